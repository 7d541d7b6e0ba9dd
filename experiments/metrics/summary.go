package metrics

import (
	"time"

	"gamesearch/game"

	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Games            int
	Draws            int
	Wins             map[int]int // By AgentConfig.ID
	MeanGameLength   float64
	StdDevGameLength float64
	Moves            int
	MeanMoveDuration time.Duration
	StdDevDuration   time.Duration
	MeanRollouts     float64
	MeanNodes        float64
}

// Summarize aggregates game and move records of an experiment.
func Summarize(games []GameRecord, moves []MoveRecord) Summary {
	summary := Summary{
		Games: len(games),
		Wins:  make(map[int]int),
		Moves: len(moves),
	}

	lengths := make([]float64, 0, len(games))
	for _, record := range games {
		lengths = append(lengths, float64(record.TotalMoves))
		switch record.Winner {
		case game.Player1.String():
			summary.Wins[record.Agent1]++
		case game.Player2.String():
			summary.Wins[record.Agent2]++
		default:
			summary.Draws++
		}
	}
	summary.MeanGameLength, summary.StdDevGameLength = meanStdDev(lengths)

	durations := make([]float64, 0, len(moves))
	rollouts := make([]float64, 0, len(moves))
	nodes := make([]float64, 0, len(moves))
	for _, record := range moves {
		durations = append(durations, float64(record.Duration))
		rollouts = append(rollouts, float64(record.Rollouts))
		nodes = append(nodes, float64(record.Nodes))
	}
	mean, std := meanStdDev(durations)
	summary.MeanMoveDuration = time.Duration(mean)
	summary.StdDevDuration = time.Duration(std)
	summary.MeanRollouts, _ = meanStdDev(rollouts)
	summary.MeanNodes, _ = meanStdDev(nodes)

	return summary
}

func meanStdDev(x []float64) (float64, float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}
