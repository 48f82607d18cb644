package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/tracker"
)

const deleteUsage = "todo delete <index>"

type DeleteCmd struct {
	flags *Flags
	app   *tracker.App
}

// NewDeleteCmd creates a new delete command.
func NewDeleteCmd(flags *Flags, app *tracker.App) *DeleteCmd {
	return &DeleteCmd{flags: flags, app: app}
}

// Register adds the delete command to the application.
func (cmd *DeleteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "delete",
		Aliases:     []string{"rm"},
		Usage:       "Remove a pending task",
		UsageText:   deleteUsage,
		Description: "Removes the pending task at <index>. Later tasks shift down by one. Done tasks cannot be deleted.",
		Action:      cmd.run,
	})
	return app
}

func (cmd *DeleteCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 1 {
		return usageError(deleteUsage)
	}

	index, err := parseIndex(c.Args().First())
	if err != nil {
		return err
	}

	task, err := cmd.app.Tasks.Delete(ctx, index)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "%s %s\n", styles.TextWarningStyle.Render("Deleted"), task.Title)
	return nil
}
