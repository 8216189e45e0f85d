package host

import (
	"github.com/colonyops/todoprog/internal/core/config"
	"github.com/colonyops/todoprog/internal/data/db"
)

// App is the central entry point for all todoprog operations.
// Commands consume App instead of cherry-picking raw dependencies.
type App struct {
	Runtime *Runtime
	Config  *config.Config
	DB      *db.DB
}

// NewApp constructs an App from explicit dependencies.
func NewApp(rt *Runtime, cfg *config.Config, database *db.DB) *App {
	return &App{
		Runtime: rt,
		Config:  cfg,
		DB:      database,
	}
}
