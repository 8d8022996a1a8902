package memory

import (
	"context"
	"sync"
	"time"

	"launchpad/contexts/startup-marketplace/startup-service/domain/entities"
	domainerrors "launchpad/contexts/startup-marketplace/startup-service/domain/errors"
	"launchpad/contexts/startup-marketplace/startup-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the startup, feedback, clock and
// id generator ports. Startups are kept in insertion order.
// When a directory is supplied, CreateStartup re-checks the founder role while
// holding the write lock.
type Store struct {
	mu sync.RWMutex

	founders ports.UserDirectory
	startups map[string]entities.Startup
	order    []string
	feedback map[string][]entities.Feedback
}

func NewStore(founders ports.UserDirectory) *Store {
	return &Store{
		founders: founders,
		startups: make(map[string]entities.Startup),
		feedback: make(map[string][]entities.Feedback),
	}
}

func (s *Store) CreateStartup(ctx context.Context, startup entities.Startup) (entities.Startup, error) {
	if err := ctx.Err(); err != nil {
		return entities.Startup{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.founders != nil {
		founder, found, err := s.founders.GetUser(ctx, startup.FounderID)
		if err != nil {
			return entities.Startup{}, err
		}
		if !found {
			return entities.Startup{}, domainerrors.ErrFounderNotFound
		}
		if founder.Role != ports.RoleFounder {
			return entities.Startup{}, domainerrors.ErrNotFounder
		}
	}
	if _, exists := s.startups[startup.StartupID]; exists {
		return entities.Startup{}, domainerrors.ErrRepositoryBroken
	}

	stored := copyStartup(startup)
	s.startups[stored.StartupID] = stored
	s.order = append(s.order, stored.StartupID)
	return copyStartup(stored), nil
}

func (s *Store) GetStartup(ctx context.Context, startupID string) (entities.Startup, bool, error) {
	if err := ctx.Err(); err != nil {
		return entities.Startup{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	startup, ok := s.startups[startupID]
	if !ok {
		return entities.Startup{}, false, nil
	}
	return copyStartup(startup), true, nil
}

func (s *Store) ListStartupsByCategories(ctx context.Context, categories []string) ([]entities.Startup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		wanted[category] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Startup, 0)
	for _, startupID := range s.order {
		startup := s.startups[startupID]
		for _, category := range startup.Categories {
			if _, ok := wanted[category]; ok {
				items = append(items, copyStartup(startup))
				break
			}
		}
	}
	return items, nil
}

func (s *Store) CreateFeedback(ctx context.Context, feedback entities.Feedback) (entities.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return entities.Feedback{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.startups[feedback.StartupID]; !ok {
		return entities.Feedback{}, domainerrors.ErrStartupNotFound
	}
	feedback.CreatedAt = feedback.CreatedAt.UTC()
	s.feedback[feedback.StartupID] = append(s.feedback[feedback.StartupID], feedback)
	return feedback, nil
}

func (s *Store) ListFeedbackByStartup(ctx context.Context, startupID string) ([]entities.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entities.Feedback{}, s.feedback[startupID]...), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func copyStartup(startup entities.Startup) entities.Startup {
	startup.Categories = append([]string(nil), startup.Categories...)
	return startup
}
