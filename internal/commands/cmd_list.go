package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
	"github.com/colonyops/todo/internal/tracker"
	"github.com/colonyops/todo/pkg/iojson"
)

type ListCmd struct {
	flags  *Flags
	app    *tracker.App
	format string
}

// NewListCmd creates a new list command.
func NewListCmd(flags *Flags, app *tracker.App) *ListCmd {
	return &ListCmd{flags: flags, app: app}
}

// Register adds the list command to the application.
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "Show pending and done tasks",
		UsageText: "todo list [--format text|json|markdown]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json, markdown)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	switch cmd.format {
	case "text", "json", "markdown":
	default:
		return fmt.Errorf("%w: unknown format %q (text, json, markdown)", ErrUsage, cmd.format)
	}

	listing, err := cmd.app.Tasks.List(ctx)
	if err != nil {
		return err
	}

	w := c.Root().Writer
	switch cmd.format {
	case "json":
		return writeListJSON(w, listing)
	case "markdown":
		return writeListMarkdown(w, listing)
	default:
		writeListText(w, listing)
		return nil
	}
}

func writeListText(w io.Writer, listing todo.Listing) {
	_, _ = fmt.Fprintln(w, "Pending tasks:")
	for _, e := range listing.Pending {
		_, _ = fmt.Fprintf(w, "%d: %s\n", e.Index, e.Title)
	}
	_, _ = fmt.Fprintln(w, "Done tasks:")
	for _, e := range listing.Done {
		_, _ = fmt.Fprintf(w, "%d: %s\n", e.Index, e.Title)
	}
}

type listLine struct {
	List   string `json:"list"`
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

func writeListJSON(w io.Writer, listing todo.Listing) error {
	sections := []struct {
		name    string
		entries []todo.Entry
	}{
		{"pending", listing.Pending},
		{"done", listing.Done},
	}

	for _, s := range sections {
		for _, e := range s.entries {
			line := listLine{List: s.name, Index: e.Index, Title: e.Title, Status: e.Status}
			if err := iojson.WriteLine(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// listMarkdown renders the listing as a GitHub style checklist.
func listMarkdown(listing todo.Listing) string {
	var b strings.Builder

	b.WriteString("## Pending\n\n")
	if len(listing.Pending) == 0 {
		b.WriteString("_nothing pending_\n")
	}
	for _, e := range listing.Pending {
		fmt.Fprintf(&b, "- [ ] %d: %s `%s`\n", e.Index, e.Title, e.Status)
	}

	b.WriteString("\n## Done\n\n")
	if len(listing.Done) == 0 {
		b.WriteString("_nothing done_\n")
	}
	for _, e := range listing.Done {
		fmt.Fprintf(&b, "- [x] %d: %s\n", e.Index, e.Title)
	}

	return b.String()
}

func writeListMarkdown(w io.Writer, listing todo.Listing) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(listMarkdown(listing))
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
