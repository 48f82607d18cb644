package tracker

import (
	"github.com/colonyops/todo/internal/core/config"
)

// App is the central entry point for all todo operations.
// Commands and the TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Tasks  *TaskService
	Doctor *DoctorService
	Config *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(tasks *TaskService, doctor *DoctorService, cfg *config.Config) *App {
	return &App{
		Tasks:  tasks,
		Doctor: doctor,
		Config: cfg,
	}
}
