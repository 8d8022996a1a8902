package ports

import (
	"context"
	"time"

	"launchpad/contexts/startup-marketplace/startup-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for startups and feedback.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// UserSummary is the slice of an account this module reads.
type UserSummary struct {
	UserID    string
	FullName  string
	Role      string
	Interests []string
}

const (
	RoleFounder = "founder"
	RoleAdopter = "adopter"
)

// UserDirectory resolves accounts owned by the identity module.
// Unknown ids are reported as found=false or omitted, never as errors.
type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (UserSummary, bool, error)
	ListUsers(ctx context.Context, userIDs []string) (map[string]UserSummary, error)
}

// StartupRepository is the startup catalog boundary.
//
// CreateStartup must refuse the write with ErrFounderNotFound or ErrNotFounder
// when the owner is not a founder at write time. GetStartup reports absence
// through found=false. ListStartupsByCategories returns startups sharing at
// least one category, oldest first.
type StartupRepository interface {
	CreateStartup(ctx context.Context, startup entities.Startup) (entities.Startup, error)
	GetStartup(ctx context.Context, startupID string) (entities.Startup, bool, error)
	ListStartupsByCategories(ctx context.Context, categories []string) ([]entities.Startup, error)
}

// FeedbackRepository stores adopter feedback per startup, oldest first.
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback entities.Feedback) (entities.Feedback, error)
	ListFeedbackByStartup(ctx context.Context, startupID string) ([]entities.Feedback, error)
}
