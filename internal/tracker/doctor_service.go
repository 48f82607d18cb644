package tracker

import (
	"context"

	"github.com/spf13/afero"

	"github.com/colonyops/todo/internal/core/config"
	"github.com/colonyops/todo/internal/core/doctor"
)

// DoctorService runs health checks on the todo setup.
type DoctorService struct {
	fs     afero.Fs
	config *config.Config
}

// NewDoctorService creates a new DoctorService.
func NewDoctorService(fs afero.Fs, cfg *config.Config) *DoctorService {
	return &DoctorService{
		fs:     fs,
		config: cfg,
	}
}

// RunChecks executes all doctor checks and returns results.
func (d *DoctorService) RunChecks(ctx context.Context, configPath string, autofix bool) []doctor.Result {
	checks := []doctor.Check{
		doctor.NewConfigCheck(d.fs, d.config, configPath),
		doctor.NewSnapshotCheck(d.fs, d.config.SnapshotPath(), autofix),
	}
	return doctor.RunAll(ctx, checks)
}
