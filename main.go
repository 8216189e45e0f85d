package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoprog/internal/commands"
	"github.com/colonyops/todoprog/internal/core/config"
	"github.com/colonyops/todoprog/internal/core/logging"
	"github.com/colonyops/todoprog/internal/core/program"
	"github.com/colonyops/todoprog/internal/core/styles"
	"github.com/colonyops/todoprog/internal/data/db"
	"github.com/colonyops/todoprog/internal/data/stores"
	"github.com/colonyops/todoprog/internal/host"
	"github.com/colonyops/todoprog/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() reads
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		todoApp   = &host.App{}
		database  *db.DB
	)

	flags := &commands.Flags{}

	app := commands.NewRoot(flags, todoApp)
	app.Version = build()
	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger
		logCloser = closer

		cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
		if err != nil {
			return ctx, fmt.Errorf("load config: %w", err)
		}
		flags.Config = cfg

		palette, _ := styles.GetPalette(cfg.Theme)
		styles.SetTheme(palette)

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return ctx, fmt.Errorf("create data dir: %w", err)
		}

		dbOpts := db.DefaultOpenOptions()
		dbOpts.MaxOpenConns = cfg.Database.MaxOpenConns
		dbOpts.BusyTimeout = cfg.Database.BusyTimeout
		database, err = db.Open(cfg.DataDir, dbOpts)
		if err != nil {
			return ctx, fmt.Errorf("open database: %w", err)
		}

		rt := host.NewRuntime(
			stores.NewAccountStore(database),
			stores.NewTxStore(database),
			program.NewProcessor(logging.Component("program")),
			logging.Component("host"),
		)

		// Populate the pre-allocated App struct (commands already hold a pointer to it)
		*todoApp = *host.NewApp(rt, cfg, database)

		return ctx, nil
	}
	app.After = func(ctx context.Context, c *cli.Command) error {
		if database != nil {
			if err := database.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close database")
				return err
			}
		}

		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
