package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/spf13/afero"

	"github.com/colonyops/todo/internal/core/config"
)

// ConfigCheck reports on the config file and the loaded configuration.
type ConfigCheck struct {
	fs         afero.Fs
	cfg        *config.Config
	configPath string
}

// NewConfigCheck creates a new config check.
func NewConfigCheck(fs afero.Fs, cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{fs: fs, cfg: cfg, configPath: configPath}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	switch _, err := c.fs.Stat(c.configPath); {
	case c.configPath == "":
		result.Items = append(result.Items, CheckItem{Label: "config file", Status: StatusPass, Detail: "none, using defaults"})
	case os.IsNotExist(err):
		result.Items = append(result.Items, CheckItem{Label: "config file", Status: StatusPass, Detail: "not found, using defaults"})
	case err != nil:
		result.Items = append(result.Items, CheckItem{Label: "config file", Status: StatusFail, Detail: fmt.Sprintf("inaccessible: %v", err)})
	default:
		result.Items = append(result.Items, CheckItem{Label: "config file", Status: StatusPass, Detail: c.configPath})
	}

	err := c.cfg.ValidateFs(c.fs)
	if err == nil {
		result.Items = append(result.Items, CheckItem{Label: "settings", Status: StatusPass})
		return result
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		result.Items = append(result.Items, CheckItem{Label: "settings", Status: StatusFail, Detail: err.Error()})
		return result
	}

	for _, fe := range fieldErrs {
		result.Items = append(result.Items, CheckItem{Label: fe.Field, Status: StatusFail, Detail: fe.Err.Error()})
	}

	return result
}
