package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/todo/internal/tracker"
	"github.com/colonyops/todo/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *tracker.App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *tracker.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "tui",
		Usage:       "Open the interactive task list",
		UsageText:   "todo tui",
		Description: "Shows pending and done tasks side by side. Every change is saved immediately.",
		Action:      cmd.run,
	})
	return app
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires a terminal")
	}

	m := tui.New(ctx, tui.Deps{
		Tasks:         cmd.app.Tasks,
		DefaultStatus: cmd.app.Config.DefaultStatus,
	})

	log.Debug().Msg("starting tui")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
