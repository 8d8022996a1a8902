package startupservice

import (
	"log/slog"
	"time"

	httpadapter "launchpad/contexts/startup-marketplace/startup-service/adapters/http"
	"launchpad/contexts/startup-marketplace/startup-service/adapters/memory"
	"launchpad/contexts/startup-marketplace/startup-service/application/commands"
	"launchpad/contexts/startup-marketplace/startup-service/application/queries"
	"launchpad/contexts/startup-marketplace/startup-service/ports"
)

// Module is the startup-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Startups     ports.StartupRepository
	Feedback     ports.FeedbackRepository
	Users        ports.UserDirectory
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

// NewModule wires startup use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			CreateStartup: commands.CreateStartupUseCase{
				Startups:     deps.Startups,
				Users:        deps.Users,
				Clock:        deps.Clock,
				IDGenerator:  deps.IDGenerator,
				StoreTimeout: deps.StoreTimeout,
				Logger:       deps.Logger,
			},
			SubmitFeedback: commands.SubmitFeedbackUseCase{
				Startups:     deps.Startups,
				Feedback:     deps.Feedback,
				Clock:        deps.Clock,
				IDGenerator:  deps.IDGenerator,
				StoreTimeout: deps.StoreTimeout,
				Logger:       deps.Logger,
			},
			Feed: queries.FeedUseCase{
				Users:        deps.Users,
				Startups:     deps.Startups,
				StoreTimeout: deps.StoreTimeout,
				Logger:       deps.Logger,
			},
			ListFeedback: queries.ListFeedbackUseCase{
				Startups:     deps.Startups,
				Feedback:     deps.Feedback,
				Users:        deps.Users,
				StoreTimeout: deps.StoreTimeout,
				Logger:       deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
// users resolves founders and adopters owned by the account module.
func NewInMemoryModule(users ports.UserDirectory, logger *slog.Logger) Module {
	store := memory.NewStore(users)
	module := NewModule(Dependencies{
		Startups:     store,
		Feedback:     store,
		Users:        users,
		Clock:        store,
		IDGenerator:  store,
		StoreTimeout: 5 * time.Second,
		Logger:       logger,
	})
	module.Store = store
	return module
}
