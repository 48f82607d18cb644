package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/tracker"
)

const completeUsage = "todo complete <index>"

type CompleteCmd struct {
	flags *Flags
	app   *tracker.App
}

// NewCompleteCmd creates a new complete command.
func NewCompleteCmd(flags *Flags, app *tracker.App) *CompleteCmd {
	return &CompleteCmd{flags: flags, app: app}
}

// Register adds the complete command to the application.
func (cmd *CompleteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "complete",
		Aliases:     []string{"done"},
		Usage:       "Move a pending task to the done list",
		UsageText:   completeUsage,
		Description: "Moves the pending task at <index> to the end of the done list and sets its status to DONE.",
		Action:      cmd.run,
	})
	return app
}

func (cmd *CompleteCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 1 {
		return usageError(completeUsage)
	}

	index, err := parseIndex(c.Args().First())
	if err != nil {
		return err
	}

	task, err := cmd.app.Tasks.Complete(ctx, index)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "%s %s\n", styles.TextSuccessStyle.Render("Completed"), task.Title)
	return nil
}
