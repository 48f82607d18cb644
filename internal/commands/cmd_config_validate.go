package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/core/doctor"
	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/tracker"
	"github.com/colonyops/todo/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	app    *tracker.App
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags, app *tracker.App) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags, app: app}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "todo config validate [options]",
				Description: "Validates the configuration file: default status, theme name, and snapshot path.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type fieldErrorJSON struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	errs := fieldErrors(cmd.app.Config.Validate())

	if cmd.format == "json" {
		return cmd.outputJSON(c.Root().Writer, errs)
	}

	return cmd.outputText(c.Root().Writer, errs)
}

// fieldErrors flattens a validation error into per-field messages.
func fieldErrors(err error) []fieldErrorJSON {
	if err == nil {
		return nil
	}

	var fe criterio.FieldErrors
	if !errors.As(err, &fe) {
		return []fieldErrorJSON{{Field: "config", Message: err.Error()}}
	}

	out := make([]fieldErrorJSON, 0, len(fe))
	for _, e := range fe {
		out = append(out, fieldErrorJSON{Field: e.Field, Message: e.Err.Error()})
	}
	return out
}

func (cmd *ConfigValidateCmd) outputJSON(w io.Writer, errs []fieldErrorJSON) error {
	out := struct {
		Valid  bool             `json:"valid"`
		File   string           `json:"file"`
		Errors []fieldErrorJSON `json:"errors,omitempty"`
	}{
		Valid:  len(errs) == 0,
		File:   cmd.flags.ConfigPath,
		Errors: errs,
	}

	if err := iojson.WriteWith(w, os.Stderr, out); err != nil {
		return err
	}

	if len(errs) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputText(w io.Writer, errs []fieldErrorJSON) error {
	_, _ = fmt.Fprintf(w, "%s %s\n", statusIcon(doctor.StatusPass), styles.TextMutedStyle.Render(cmd.flags.ConfigPath))

	for _, e := range errs {
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", statusIcon(doctor.StatusFail), e.Field, e.Message)
	}

	_, _ = fmt.Fprintln(w)
	if len(errs) == 0 {
		_, _ = fmt.Fprintln(w, styles.TextSuccessStyle.Render("Configuration is valid"))
		return nil
	}

	_, _ = fmt.Fprintln(w, styles.TextErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(errs))))
	return cli.Exit("", 1)
}
