package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"power4/communication"
	"power4/communication/client"
	"power4/communication/server"
	"power4/engine"
	"power4/experiments"
	"power4/experiments/metrics"
	"power4/game"
	"power4/meta"
	"power4/player"
	"power4/pool"
	"power4/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        = meta.DefaultConfig()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "power4",
		Short:        "Play power 4 locally or over the network against search robots",
		SilenceUsage: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	flags.StringVarP(&cfg.Strategy, "strategy", "s", cfg.Strategy, "evaluator: "+strategyNames())
	flags.IntVarP(&cfg.Depth, "depth", "d", cfg.Depth, "search depth")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker pool size")
	flags.BoolVarP(&cfg.Render, "render", "r", cfg.Render, "render the board")
	flags.DurationVar(&cfg.Heartbeat, "alive", cfg.Heartbeat, "log a heartbeat at this interval while thinking, 0 disables it")
	flags.Lookup("alive").NoOptDefVal = meta.HEARTBEAT.String()

	root.AddCommand(newLocalCmd(), newRobotCmd(), newManualCmd(), newBenchCmd())
	return root
}

// setup merges the config file under the flags given on the command line
// and configures the global logger
func setup(cmd *cobra.Command) error {
	if configPath != "" {
		loaded, err := meta.Load(configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("log-level") {
			cfg.LogLevel = loaded.LogLevel
		}
		if !flags.Changed("strategy") {
			cfg.Strategy = loaded.Strategy
		}
		if !flags.Changed("depth") {
			cfg.Depth = loaded.Depth
		}
		if !flags.Changed("workers") {
			cfg.Workers = loaded.Workers
		}
		if !flags.Changed("render") {
			cfg.Render = loaded.Render
		}
		if !flags.Changed("alive") {
			cfg.Heartbeat = loaded.Heartbeat
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	return nil
}

func strategyNames() string {
	names := []string{}
	for _, s := range searcher.Strategies() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// display returns the board output, nil when rendering is off
func display() io.Writer {
	if cfg.Render {
		return os.Stdout
	}
	return nil
}

// newPlayer builds a human or a robot from a player name
func newPlayer(name string, p *pool.Pool) (player.Player, error) {
	if name == "human" {
		return player.NewHuman(os.Stdin, os.Stdout), nil
	}
	strategy, err := searcher.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	evaluator, err := searcher.NewSync(strategy, cfg.Depth, p)
	if err != nil {
		return nil, err
	}
	return player.NewRobot(evaluator), nil
}

func newLocalCmd() *cobra.Command {
	var first, second string
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Play a game on this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pool.New(cfg.Workers)
			defer p.Close()

			p1, err := newPlayer(first, p)
			if err != nil {
				return err
			}
			p2, err := newPlayer(second, p)
			if err != nil {
				return err
			}

			if first == "human" || second == "human" {
				cfg.Render = true
			}
			outcome, err := engine.NewLocalEngine(p1, p2, display()).Run()
			if err != nil {
				return err
			}
			fmt.Printf("Game over: %s\n", outcome)
			return nil
		},
	}
	cmd.Flags().StringVar(&first, "first", "human", "first player: human or a strategy")
	cmd.Flags().StringVar(&second, "second", "minmax", "second player: human or a strategy")
	return cmd
}

// connect joins or hosts a game depending on the role
func connect(role, addr string, p player.Player) (*engine.RemoteEngine, communication.Communicator, error) {
	switch role {
	case "client":
		conn, err := client.Dial(addr)
		if err != nil {
			return nil, nil, err
		}
		return engine.NewClient(conn, p, display()), conn, nil
	case "host":
		l, err := server.Listen(addr)
		if err != nil {
			return nil, nil, err
		}
		defer l.Close()
		conn, err := l.Accept()
		if err != nil {
			return nil, nil, err
		}
		e, err := engine.NewHost(conn, p, display())
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		return e, conn, nil
	}
	return nil, nil, fmt.Errorf("unknown role %q, expected client or host", role)
}

func newRobotCmd() *cobra.Command {
	var async, thread, cached bool
	cmd := &cobra.Command{
		Use:   "robot <client|host> <address>",
		Short: "Let a robot play a game over the network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := searcher.ParseStrategy(cfg.Strategy)
			if err != nil {
				return err
			}
			switch {
			case thread && cached:
				strategy = searcher.StrategyThreadedCached
			case thread:
				strategy = searcher.StrategyThreaded
			case cached:
				strategy = searcher.StrategyCached
			}
			p := pool.New(cfg.Workers)
			defer p.Close()

			var robot player.Player
			if async {
				evaluator, err := searcher.NewAsync(strategy, cfg.Depth, p)
				if err != nil {
					return err
				}
				robot = player.NewAsyncRobot(evaluator, cfg.Heartbeat)
			} else {
				evaluator, err := searcher.NewSync(strategy, cfg.Depth, p)
				if err != nil {
					return err
				}
				robot = player.NewRobot(evaluator)
				if cfg.Heartbeat > 0 {
					stop := player.StartHeartbeat(cfg.Heartbeat)
					defer stop()
				}
			}

			e, conn, err := connect(args[0], args[1], robot)
			if err != nil {
				return err
			}
			defer conn.Close()
			log.Info().Msg("player connected!")

			outcome, err := e.Run()
			if err != nil {
				return err
			}
			log.Info().Msgf("game over: %s", outcome)
			return nil
		},
	}
	cmd.Flags().BoolVar(&async, "async", false, "evaluate through an awaitable, keeping the heartbeat on the same loop")
	cmd.Flags().BoolVar(&thread, "thread", false, "evaluate each move on its own goroutine, overrides --strategy")
	cmd.Flags().BoolVar(&cached, "cache", false, "remember exact results, overrides --strategy")
	return cmd
}

func newManualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manual <client|host> <address>",
		Short: "Play a game over the network by hand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Render = true
			e, conn, err := connect(args[0], args[1], player.NewHuman(os.Stdin, os.Stdout))
			if err != nil {
				return err
			}
			defer conn.Close()

			outcome, err := e.Run()
			if err != nil {
				return err
			}
			fmt.Printf("Game over: %s\n", outcome)
			return nil
		},
	}
}

func newBenchCmd() *cobra.Command {
	var (
		out        string
		games      int
		baseline   string
		against    []string
		throughput bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run strategy match ups and store per-move search metrics as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pool.New(cfg.Workers)
			defer p.Close()

			configs := make([]metrics.AgentConfig, 0, len(against))
			for i, name := range against {
				configs = append(configs, metrics.AgentConfig{ID: i + 1, Strategy: name, Depth: cfg.Depth})
			}
			x := experiments.Experiment{Root: out, NumGames: games, Pool: p}

			if throughput {
				histories, err := benchHistories()
				if err != nil {
					return err
				}
				all := append([]metrics.AgentConfig{{ID: 0, Strategy: baseline, Depth: cfg.Depth}}, configs...)
				records, err := x.RunThroughputExperiment(all, histories)
				if err != nil {
					return err
				}
				fmt.Printf("Evaluated %d positions, results stored in %s\n", len(records), out)
				return nil
			}
			writer, err := x.RunStrategyExperiment(metrics.AgentConfig{ID: 0, Strategy: baseline, Depth: cfg.Depth}, configs)
			if err != nil {
				return err
			}
			fmt.Printf("Results stored in %s\n", writer.Dir())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "experiments", "output directory")
	cmd.Flags().IntVarP(&games, "games", "g", meta.BENCH_GAMES, "games per match up")
	cmd.Flags().StringVar(&baseline, "baseline", string(searcher.StrategyMinMax), "baseline strategy")
	cmd.Flags().BoolVar(&throughput, "throughput", false, "evaluate fixed positions with every strategy instead of playing games")
	cmd.Flags().StringSliceVar(&against, "against", []string{string(searcher.StrategyCached), string(searcher.StrategyThreaded), string(searcher.StrategyPooled)}, "strategies played against the baseline")
	return cmd
}

// Openings replayed by the throughput bench, from the empty board to a
// crowded center with threats on both sides
var benchOpenings = [][]int{
	{},
	{4, 4},
	{4, 4, 3, 5},
	{0, 8, 1, 8, 2},
	{4, 4, 4, 4, 3, 5, 5, 3, 3, 5},
}

func benchHistories() ([][]game.Move, error) {
	histories := make([][]game.Move, 0, len(benchOpenings))
	for _, columns := range benchOpenings {
		gs := game.NewGameState()
		for _, column := range columns {
			if _, _, err := gs.Play(column); err != nil {
				return nil, err
			}
		}
		histories = append(histories, gs.History())
	}
	return histories, nil
}
