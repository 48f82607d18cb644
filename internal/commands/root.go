package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/tracker"
)

// GlobalFlags returns the root command flags bound to flags.
func GlobalFlags(flags *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("TODO_LOG_LEVEL"),
			Value:       "info",
			Destination: &flags.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (defaults to <data-dir>/todo.log)",
			Sources:     cli.EnvVars("TODO_LOG_FILE"),
			Destination: &flags.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("TODO_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &flags.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "path to data directory",
			Sources:     cli.EnvVars("TODO_DATA_DIR"),
			Value:       DefaultDataDir(),
			Destination: &flags.DataDir,
		},
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "path to the task snapshot (defaults to <data-dir>/todo.json)",
			Sources:     cli.EnvVars("TODO_FILE"),
			Destination: &flags.SnapshotFile,
		},
	}
}

// RegisterAll adds every subcommand to root.
func RegisterAll(root *cli.Command, flags *Flags, app *tracker.App) *cli.Command {
	root = NewAddCmd(flags, app).Register(root)
	root = NewCompleteCmd(flags, app).Register(root)
	root = NewDeleteCmd(flags, app).Register(root)
	root = NewListCmd(flags, app).Register(root)
	root = NewTuiCmd(flags, app).Register(root)
	root = NewDoctorCmd(flags, app).Register(root)
	root = NewConfigValidateCmd(flags, app).Register(root)
	return root
}

// RootAction runs when no subcommand matched: either none was given or the
// first argument names no command. Both are errors; the snapshot is not read.
func RootAction(_ context.Context, c *cli.Command) error {
	if c.Args().Len() > 0 {
		return fmt.Errorf("%w: unknown command %q. Run 'todo --help' for usage", ErrUsage, c.Args().First())
	}
	return usageError("todo <command> [args]")
}
