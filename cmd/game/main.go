package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/loppy/internal/application/game"
	"github.com/younwookim/loppy/internal/application/replay"
	"github.com/younwookim/loppy/internal/application/scene/playing"
	"github.com/younwookim/loppy/internal/application/system"
	"github.com/younwookim/loppy/internal/infrastructure/config"
	"github.com/younwookim/loppy/internal/infrastructure/input"
	"github.com/younwookim/loppy/internal/infrastructure/logger"
)

//go:embed configs
var configFS embed.FS

// options are read from the environment first, then overridden by flags.
type options struct {
	ConfigDir string `env:"LOPPY_CONFIG_DIR"`
	Stage     string `env:"LOPPY_STAGE" envDefault:"demo"`
	LogLevel  string `env:"LOPPY_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOPPY_LOG_FORMAT" envDefault:"console"`
	Watch     bool   `env:"LOPPY_WATCH"`

	Record string
	Replay string
}

func parseOptions(args []string, environ map[string]string, output io.Writer) (options, error) {
	var opts options
	if err := env.ParseWithOptions(&opts, env.Options{Environment: environ}); err != nil {
		return opts, fmt.Errorf("parse env: %w", err)
	}

	fset := flag.NewFlagSet("loppy", flag.ContinueOnError)
	fset.SetOutput(output)
	fset.StringVar(&opts.ConfigDir, "config", opts.ConfigDir, "Config directory (default: embedded configs)")
	fset.StringVar(&opts.Stage, "stage", opts.Stage, "Stage name under <config>/stages")
	fset.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level: debug, info, warn, error")
	fset.StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "Log format: console, text, json")
	fset.BoolVar(&opts.Watch, "watch", opts.Watch, "Reload configs when files in -config change")
	fset.StringVar(&opts.Record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&opts.Replay, "replay", "", "Play back a recorded input file")
	if err := fset.Parse(args); err != nil {
		return opts, err
	}

	if opts.Record != "" && opts.Replay != "" {
		return opts, errors.New("-record and -replay cannot be combined")
	}
	if opts.Watch && opts.ConfigDir == "" {
		return opts, errors.New("-watch needs -config, embedded configs cannot change")
	}
	return opts, nil
}

// newLoader reads from the config directory when one is given, otherwise from the embedded copy.
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseOptions(args, env.ToMap(os.Environ()), os.Stderr)
	if err != nil {
		return err
	}

	logger.Init(logger.Config{Level: opts.LogLevel, Format: opts.LogFormat})
	log := logger.L()

	loader, err := newLoader(opts.ConfigDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	store := config.NewStore(cfg)

	var recording *replay.ReplayData
	stageName := opts.Stage
	if opts.Replay != "" {
		recording, err = replay.LoadReplay(opts.Replay)
		if err != nil {
			return err
		}
		if recording.Stage != "" {
			stageName = recording.Stage
		}
	}

	stageCfg, err := loader.LoadStage(stageName)
	if err != nil {
		return err
	}
	stage := system.LoadStage(stageCfg)

	bindings, err := input.NewBindings(cfg.Controls)
	if err != nil {
		return fmt.Errorf("invalid controls: %w", err)
	}

	scene, err := playing.New(playing.Options{
		Settings:   store,
		Stage:      stage,
		StageName:  stageName,
		Poller:     input.NewPoller(bindings),
		RecordPath: opts.Record,
		Replay:     recording,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if opts.Watch {
		go func() {
			if err := config.Watch(ctx, loader, store, log); err != nil {
				log.Warn("config watch stopped", "error", err)
			}
		}()
	}

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate, log)
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("loppy: " + stageCfg.Name)
	ebiten.SetTPS(display.Framerate)

	log.Info("starting", "stage", stageName, "config", loader.BasePath(), "watch", opts.Watch)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
