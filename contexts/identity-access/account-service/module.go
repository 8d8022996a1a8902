package accountservice

import (
	"log/slog"
	"time"

	cryptoadapter "launchpad/contexts/identity-access/account-service/adapters/crypto"
	httpadapter "launchpad/contexts/identity-access/account-service/adapters/http"
	"launchpad/contexts/identity-access/account-service/adapters/memory"
	"launchpad/contexts/identity-access/account-service/application/commands"
	"launchpad/contexts/identity-access/account-service/application/queries"
	"launchpad/contexts/identity-access/account-service/ports"

	"golang.org/x/crypto/bcrypt"
)

// Module is the account-service composition root exposed to runtime wiring.
// Lookup serves cross-module joins (founder names, adopter interests).
type Module struct {
	Handler httpadapter.Handler
	Lookup  queries.LookupUsersUseCase
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Users        ports.UserRepository
	Hasher       ports.PasswordHasher
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

// NewModule wires account use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		Signup: commands.SignupUseCase{
			Users:        deps.Users,
			Hasher:       deps.Hasher,
			Clock:        deps.Clock,
			IDGenerator:  deps.IDGenerator,
			StoreTimeout: deps.StoreTimeout,
			Logger:       deps.Logger,
		},
		Login: commands.LoginUseCase{
			Users:        deps.Users,
			Hasher:       deps.Hasher,
			StoreTimeout: deps.StoreTimeout,
			Logger:       deps.Logger,
		},
		UpdateInterests: commands.UpdateInterestsUseCase{
			Users:        deps.Users,
			Clock:        deps.Clock,
			StoreTimeout: deps.StoreTimeout,
			Logger:       deps.Logger,
		},
		GetProfile: queries.GetProfileUseCase{
			Users:        deps.Users,
			StoreTimeout: deps.StoreTimeout,
			Logger:       deps.Logger,
		},
		Logger: deps.Logger,
	}

	return Module{
		Handler: handler,
		Lookup: queries.LookupUsersUseCase{
			Users:        deps.Users,
			StoreTimeout: deps.StoreTimeout,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
// bcrypt runs at its minimum cost here to keep tests fast.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users:        store,
		Hasher:       cryptoadapter.BcryptHasher{Cost: bcrypt.MinCost},
		Clock:        store,
		IDGenerator:  store,
		StoreTimeout: 5 * time.Second,
		Logger:       logger,
	})
	module.Store = store
	return module
}
