package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/validate"
	"github.com/colonyops/todo/internal/tracker"
)

const addUsage = "todo add <title> <status>"

// stdinIsTerminal reports whether stdin can drive an interactive form.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

type AddCmd struct {
	flags       *Flags
	app         *tracker.App
	interactive bool
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *tracker.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a task to the pending list",
		UsageText: addUsage,
		Description: `Appends a task to the end of the pending list. The status is stored
exactly as given.

With --interactive and missing arguments, a form prompts for them.`,
		// cli stops flag parsing at the first empty argument and drops the
		// rest, which would lose `todo add "" ""`. The raw arguments are
		// split by splitAddArgs instead; the flag is declared for help output.
		SkipFlagParsing: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "prompt for missing title and status",
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	args, err := cmd.splitAddArgs(c.Args().Slice())
	if err != nil {
		if errors.Is(err, errShowHelp) {
			cli.HelpPrinter(c.Root().Writer, cli.CommandHelpTemplate, c)
			return nil
		}
		return err
	}

	var title, status string
	switch {
	case len(args) >= 2:
		title, status = args[0], args[1]
	case cmd.interactive:
		var err error
		title, status, err = cmd.runForm(ctx, args)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	default:
		return usageError(addUsage)
	}

	entry, err := cmd.app.Tasks.Add(ctx, title, status)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "%s %d: %s\n", styles.TextSuccessStyle.Render("Added"), entry.Index, entry.Title)
	return nil
}

var errShowHelp = errors.New("show help")

// splitAddArgs reads the leading options and returns the positional
// arguments, empty strings included. Everything after "--" or after the first
// positional argument is positional.
func (cmd *AddCmd) splitAddArgs(args []string) ([]string, error) {
	cmd.interactive = false

	for i, arg := range args {
		switch arg {
		case "-i", "--interactive", "-interactive":
			cmd.interactive = true
		case "-h", "--help", "-help":
			return nil, errShowHelp
		case "--":
			return args[i+1:], nil
		default:
			if len(arg) > 1 && arg[0] == '-' {
				return nil, fmt.Errorf("%w: unknown option %q for %s", ErrUsage, arg, addUsage)
			}
			return args[i:], nil
		}
	}

	return nil, nil
}

func (cmd *AddCmd) runForm(ctx context.Context, args []string) (string, string, error) {
	if !stdinIsTerminal() {
		return "", "", fmt.Errorf("%w: --interactive requires a terminal", ErrUsage)
	}

	var title string
	if len(args) > 0 {
		title = args[0]
	}
	status := cmd.app.Config.DefaultStatus

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(validate.Title).
				Value(&title),
			huh.NewInput().
				Title("Status").
				Description("Stored as typed").
				Value(&status),
		),
	).RunWithContext(ctx)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", "", err
		}
		return "", "", fmt.Errorf("form: %w", err)
	}

	return title, status, nil
}
