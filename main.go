package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/commands"
	"github.com/colonyops/todo/internal/core/config"
	"github.com/colonyops/todo/internal/core/logging"
	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/store/jsonfile"
	"github.com/colonyops/todo/internal/tracker"
	"github.com/colonyops/todo/pkg/logutils"
	"github.com/colonyops/todo/pkg/randid"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

// reportingCommands still run when the config file fails validation so they
// can describe the problem.
var reportingCommands = map[string]bool{
	"config": true,
	"doctor": true,
}

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
		todoApp   = &tracker.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "todo",
		Usage:     "Track pending and done tasks",
		UsageText: "todo [global options] <command> [args]",
		Description: `todo keeps two ordered lists, pending and done, in a single JSON file.

Tasks are addressed by their position in the pending list, starting at 0.
Every command loads the file, applies one change, and writes it back.`,
		Version: build(),
		Flags:   commands.GlobalFlags(flags),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logFile := flags.LogFile
			if logFile == "" {
				logFile = config.DefaultLogFile(flags.DataDir)
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			ctx = logging.WithCommand(ctx, c.Args().First())
			ctx = logging.WithRunID(ctx, randid.Generate(6))

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				var fieldErrs criterio.FieldErrors
				if !errors.As(err, &fieldErrs) || !reportingCommands[c.Args().First()] {
					return ctx, fmt.Errorf("load config: %w", err)
				}

				log.Warn().Ctx(ctx).Err(err).Msg("continuing with invalid config")
				if cfg, err = config.Read(flags.ConfigPath, flags.DataDir); err != nil {
					return ctx, fmt.Errorf("load config: %w", err)
				}
			}
			if flags.SnapshotFile != "" {
				cfg.SnapshotFile = flags.SnapshotFile
			}

			if palette, ok := styles.GetPalette(cfg.TUI.Theme); ok {
				styles.SetTheme(palette)
			}

			store := jsonfile.NewOsSnapshotStore(cfg.SnapshotPath(), log.Logger)
			log.Debug().Ctx(ctx).Str("snapshot", store.Path()).Msg("using snapshot")

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*todoApp = *tracker.NewApp(
				tracker.NewTaskService(store, log.Logger),
				tracker.NewDoctorService(afero.NewOsFs(), cfg),
				cfg,
			)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: commands.RootAction,
	}

	app = commands.RegisterAll(app, flags, todoApp)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		if msg := runErr.Error(); msg != "" {
			fmt.Println(msg)
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
