package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"gamesearch/connectfour"
	"gamesearch/engine"
	"gamesearch/experiments"
	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	strategy   string
	opponent   string
	goroutines int
	rollouts   int
	seed       uint64
	humanFirst bool
	experiment string
	games      int
	out        string
}

func main() {
	var o options
	mode := flag.String("mode", "play", "play, selfplay or experiment")
	flag.StringVar(&o.strategy, "strategy", "mcts", "Strategy of the computer player: mcts, bruteforce or random")
	flag.StringVar(&o.opponent, "opponent", "random", "Strategy of the second computer player in selfplay mode")
	flag.IntVar(&o.goroutines, "goroutines", meta.Goroutines, "Number of goroutines per search")
	flag.IntVar(&o.rollouts, "rollouts", meta.Rollouts, "Random playouts per candidate move")
	flag.Uint64Var(&o.seed, "seed", 0, "Seed for reproducible searches, 0 seeds from the clock")
	rows := flag.Int("rows", meta.Rows, "Board rows")
	columns := flag.Int("columns", meta.Columns, "Board columns")
	flag.BoolVar(&o.humanFirst, "human-first", false, "Let the human move first in play mode")
	flag.StringVar(&o.experiment, "experiment", "strength", "Experiment to run: throughput or strength")
	flag.IntVar(&o.games, "games", 10, "Games per match up in experiment mode")
	flag.StringVar(&o.out, "out", "results", "Directory for experiment records")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	board, err := newBoard(*rows, *columns)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid board size")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		err = play(ctx, board, o)
	case "selfplay":
		err = selfPlay(ctx, board, o)
	case "experiment":
		err = experiment(ctx, board, o)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("stopped")
	}
}

func newBoard(rows, columns int) (connectfour.State, error) {
	if rows == meta.Rows && columns == meta.Columns {
		return connectfour.InitialState(), nil
	}
	return connectfour.New(rows, columns)
}

func newAgent(strategy string, o options) (engine.Agent[connectfour.State], error) {
	s, err := experiments.NewStrategy(metrics.AgentConfig{
		Strategy:   strategy,
		Goroutines: o.goroutines,
		Rollouts:   o.rollouts,
		Seed:       o.seed,
	})
	if err != nil {
		return nil, err
	}
	return engine.NewStrategyAgent(s), nil
}

func play(ctx context.Context, board connectfour.State, o options) error {
	computer, err := newAgent(o.strategy, o)
	if err != nil {
		return err
	}
	human := engine.NewHuman(os.Stdin, os.Stdout)

	var player1, player2 engine.Agent[connectfour.State] = computer, human
	humanSide := game.Player2
	if o.humanFirst {
		player1, player2 = human, computer
		humanSide = game.Player1
	}

	result, err := engine.NewLocalEngine(board, player1, player2, engine.WithOutput(os.Stdout)).Run(ctx)
	if errors.Is(err, engine.ErrInputClosed) {
		fmt.Println("Bye.")
		return nil
	}
	if err != nil {
		return err
	}

	switch result.Winner {
	case humanSide.String():
		fmt.Println("You win!")
	case "":
		fmt.Println("It's a tie.")
	default:
		fmt.Println("You lose.")
	}
	return nil
}

func selfPlay(ctx context.Context, board connectfour.State, o options) error {
	player1, err := newAgent(o.strategy, o)
	if err != nil {
		return err
	}
	player2, err := newAgent(o.opponent, o)
	if err != nil {
		return err
	}

	result, err := engine.NewLocalEngine(board, player1, player2, engine.WithOutput(os.Stdout)).Run(ctx)
	if err != nil {
		return err
	}

	winner := "nobody"
	switch result.Winner {
	case game.Player1.String():
		winner = o.strategy
	case game.Player2.String():
		winner = o.opponent
	}
	log.Info().Str("winner", winner).Int("moves", result.Game.TotalMoves).Dur("duration", result.Game.Duration).Msg("selfplay complete")
	return nil
}

func experiment(ctx context.Context, board connectfour.State, o options) error {
	var (
		report experiments.Report
		err    error
	)
	switch o.experiment {
	case "throughput":
		report, err = experiments.RunThroughput(ctx, o.out, o.games, o.rollouts, board)
	case "strength":
		report, err = experiments.RunStrength(ctx, o.out, o.games, o.goroutines, board)
	default:
		return fmt.Errorf("unknown experiment %q", o.experiment)
	}
	if err != nil {
		return err
	}

	s := report.Summary
	log.Info().
		Str("dir", report.Dir).
		Int("games", s.Games).
		Int("draws", s.Draws).
		Interface("wins", s.Wins).
		Float64("mean_game_length", s.MeanGameLength).
		Dur("mean_move_duration", s.MeanMoveDuration).
		Float64("mean_rollouts", s.MeanRollouts).
		Msg("experiment complete")
	return nil
}
