package experiments

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gamesearch/connectfour"
	"gamesearch/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func smallBoard(t *testing.T) connectfour.State {
	t.Helper()
	board, err := connectfour.New(4, 4)
	require.NoError(t, err)
	return board
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	random := metrics.AgentConfig{ID: 1, Strategy: "random", Goroutines: 1, Seed: 11}
	mcts := metrics.AgentConfig{ID: 2, Strategy: "mcts", Goroutines: 2, Rollouts: 5, Seed: 12}

	report, err := Run(context.Background(), root, "smoke", []metrics.AgentConfig{random, mcts},
		[]MatchUp{{random, mcts}}, 4, smallBoard(t))

	require.NoError(t, err)
	require.Len(t, report.Games, 4)
	require.Equal(t, 4, report.Summary.Games)

	t.Run("alternating the starting agent", func(t *testing.T) {
		for i, record := range report.Games {
			require.Equal(t, i+1, record.ID)
			if i%2 == 0 {
				require.Equal(t, []int{1, 2}, []int{record.Agent1, record.Agent2})
			} else {
				require.Equal(t, []int{2, 1}, []int{record.Agent1, record.Agent2})
			}
			require.Equal(t, "Player1", record.StartingPlayer)
		}
	})

	t.Run("recording every move", func(t *testing.T) {
		total := 0
		for _, record := range report.Games {
			total += record.TotalMoves
		}
		require.Len(t, report.Moves, total)
		require.Equal(t, total, report.Summary.Moves)

		wins := report.Summary.Draws
		for _, n := range report.Summary.Wins {
			wins += n
		}
		require.Equal(t, 4, wins, "Every game is won or drawn")
	})

	t.Run("writing the csv files", func(t *testing.T) {
		require.Equal(t, filepath.Join(root, "smoke"), filepath.Dir(report.Dir))
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			info, err := os.Stat(filepath.Join(report.Dir, name))
			require.NoError(t, err, name)
			require.NotZero(t, info.Size(), name)
		}
	})
}

func TestRunUnknownStrategy(t *testing.T) {
	bogus := metrics.AgentConfig{ID: 1, Strategy: "oracle"}

	_, err := Run(context.Background(), t.TempDir(), "bogus", []metrics.AgentConfig{bogus},
		[]MatchUp{{bogus, bogus}}, 1, smallBoard(t))

	require.True(t, errors.Is(err, ErrUnknownStrategy))
}

func TestNewStrategy(t *testing.T) {
	for _, name := range []string{"mcts", "bruteforce", "random"} {
		strategy, err := NewStrategy(metrics.AgentConfig{Strategy: name, Goroutines: 1, Rollouts: 3, Seed: 1})

		require.NoError(t, err)
		require.Equal(t, name, strategy.Name())
	}

	_, err := NewStrategy(metrics.AgentConfig{Strategy: ""})
	require.True(t, errors.Is(err, ErrUnknownStrategy))
}

func TestRunThroughput(t *testing.T) {
	report, err := RunThroughput(context.Background(), t.TempDir(), 1, 3, smallBoard(t))

	require.NoError(t, err)
	require.Len(t, report.Games, 4, "One game per goroutine setting")
	for _, record := range report.Games {
		require.Equal(t, record.Agent1, record.Agent2)
	}
}
