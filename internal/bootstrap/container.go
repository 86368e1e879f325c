package bootstrap

import (
	"time"

	"moonjournal-be/internal/config"
	"moonjournal-be/internal/controller"
	"moonjournal-be/internal/pkg/logger"
	"moonjournal-be/internal/pkg/lunar"
	"moonjournal-be/internal/repository/memory"
	"moonjournal-be/internal/repository/unitofwork"
	"moonjournal-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	AuthController         controller.IAuthController
	NotebookController     controller.INotebookController
	JournalEntryController controller.IJournalEntryController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Auth.RefreshTokenHours) * time.Hour)

	moonInfo := lunar.NewMoonInfo(cfg.Observer.Latitude, cfg.Observer.Longitude)

	authService := service.NewAuthService(uowFactory, sessionRepo, cfg.Auth)
	notebookService := service.NewNotebookService(uowFactory)
	journalEntryService := service.NewJournalEntryService(uowFactory, moonInfo)

	sysLogger.Info("bootstrap", "Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		NotebookController:     controller.NewNotebookController(notebookService),
		JournalEntryController: controller.NewJournalEntryController(journalEntryService),
		Logger:                 sysLogger,
	}
}
