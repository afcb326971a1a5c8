package main

import (
	"flag"
	"fmt"
	"os"
	"pacman/agent"
	"pacman/communication/client"
	"pacman/communication/server"
	"pacman/config"
	"pacman/experiments"
	"pacman/game"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: pacman [flags] <command>

commands:
  play        play one game and print the final board
  serve       run the agent decision server
  experiment  run the configured experiment and write its records
  layouts     list the bundled layouts
  config      print the effective configuration

flags:
`

// flags holds the command line. String flags override the configuration when
// non-empty, the others when passed.
type flags struct {
	configPath string
	layout     string
	pacman     string
	depth      int
	evaluation string
	search     string
	heuristic  string
	ghost      string
	ghosts     int
	seed       uint64
	remote     string
	addr       string
	level      string
}

func newFlagSet(f *flags) *flag.FlagSet {
	fs := flag.NewFlagSet("pacman", flag.ExitOnError)
	fs.StringVar(&f.configPath, "config", "", "TOML configuration file")
	fs.StringVar(&f.layout, "layout", "", "Layout to play")
	fs.StringVar(&f.pacman, "pacman", "", "Pacman agent")
	fs.IntVar(&f.depth, "depth", 0, "Search depth of game-tree agents, 0 for a greedy search")
	fs.StringVar(&f.evaluation, "evaluation", "", "Evaluation function of game-tree agents")
	fs.StringVar(&f.search, "search", "", "Graph search of search agents")
	fs.StringVar(&f.heuristic, "heuristic", "", "Heuristic of search agents")
	fs.StringVar(&f.ghost, "ghost", "", "Ghost agent")
	fs.IntVar(&f.ghosts, "ghosts", -1, "Number of ghosts, negative for every ghost of the layout")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed")
	fs.StringVar(&f.remote, "remote", "", "URL of an agent server playing pacman")
	fs.StringVar(&f.addr, "addr", "", "Listen address of the agent server")
	fs.StringVar(&f.level, "level", "", "Log level")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	return fs
}

// apply overrides cfg with the flags parsed by fs and returns the pacman agent
// configuration. A depth of 0 in the file means the default, on the command
// line it means a greedy search.
func (f *flags) apply(fs *flag.FlagSet, cfg *config.Config) agent.Config {
	override(&cfg.Game.Layout, f.layout)
	override(&cfg.Pacman.Agent, f.pacman)
	override(&cfg.Pacman.Evaluation, f.evaluation)
	override(&cfg.Pacman.Search, f.search)
	override(&cfg.Pacman.Heuristic, f.heuristic)
	override(&cfg.Game.Ghost, f.ghost)
	override(&cfg.Server.Remote, f.remote)
	override(&cfg.Server.Addr, f.addr)
	override(&cfg.Log.Level, f.level)

	passed := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { passed[fl.Name] = true })
	if passed["depth"] {
		cfg.Pacman.Depth = f.depth
	}
	if passed["ghosts"] {
		cfg.Game.Ghosts = f.ghosts
	}
	if passed["seed"] {
		cfg.Game.Seed = f.seed
	}

	agentConfig := cfg.Pacman.AgentConfig(cfg.Game.Seed)
	if passed["depth"] {
		agentConfig.Depth = f.depth
	}
	return agentConfig
}

func main() {
	var f flags
	fs := newFlagSet(&f)
	fs.Parse(os.Args[1:])

	cfg := config.Default()
	if f.configPath != "" {
		var err error
		cfg, err = config.Open(f.configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	agentConfig := f.apply(fs, &cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	setupLogging(cfg.Log)

	var err error
	switch command := fs.Arg(0); command {
	case "", "play":
		err = play(cfg, agentConfig)
	case "serve":
		err = server.NewServer(agentConfig,
			server.WithMaxDepth(cfg.Server.MaxDepth),
		).ListenAndServe(cfg.Server.Addr)
	case "experiment":
		_, err = experiments.Run(cfg)
	case "layouts":
		fmt.Println(strings.Join(game.LayoutNames(), "\n"))
	case "config":
		err = cfg.Dump(os.Stdout)
	default:
		fs.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}

func setupLogging(c config.Log) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func play(cfg config.Config, agentConfig agent.Config) error {
	l, err := game.LoadLayout(cfg.Game.Layout)
	if err != nil {
		return err
	}

	name := agentConfig.String()
	var pacman agent.Agent
	if cfg.Server.Remote != "" {
		pacman = client.NewClient(cfg.Server.Remote,
			client.WithAgent(agentConfig.Agent, agentConfig.Depth, agentConfig.Evaluation),
			client.WithTimeout(cfg.Server.RequestTimeout()),
		)
		name = "remote " + name
	} else {
		pacman, err = agent.NewPacman(agentConfig)
		if err != nil {
			return err
		}
	}

	e, err := experiments.NewGame(l, pacman, name, cfg.Game, cfg.Game.Seed)
	if err != nil {
		return err
	}
	gameMetric, moveMetrics := e.Run()

	fmt.Print(e.State)
	result := "lost"
	if gameMetric.Win {
		result = "won"
	} else if !e.State.IsLose() {
		result = "stopped"
	}
	log.Info().Msgf("pacman %s on %s with score %v after %d moves in %v",
		result, gameMetric.Layout, gameMetric.Score, len(moveMetrics), gameMetric.Duration)
	return nil
}
