package startupservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	domainerrors "launchpad/contexts/startup-marketplace/startup-service/domain/errors"
	"launchpad/contexts/startup-marketplace/startup-service/ports"
	httptransport "launchpad/contexts/startup-marketplace/startup-service/transport/http"
)

type fakeDirectory struct {
	mu    sync.RWMutex
	users map[string]ports.UserSummary
}

func newFakeDirectory(users ...ports.UserSummary) *fakeDirectory {
	directory := &fakeDirectory{users: make(map[string]ports.UserSummary)}
	for _, user := range users {
		directory.users[user.UserID] = user
	}
	return directory
}

func (d *fakeDirectory) GetUser(_ context.Context, userID string) (ports.UserSummary, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	user, ok := d.users[userID]
	return user, ok, nil
}

func (d *fakeDirectory) ListUsers(_ context.Context, userIDs []string) (map[string]ports.UserSummary, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	items := make(map[string]ports.UserSummary)
	for _, userID := range userIDs {
		if user, ok := d.users[userID]; ok {
			items[userID] = user
		}
	}
	return items, nil
}

func startupRequest(name string, categories ...string) httptransport.CreateStartupRequest {
	return httptransport.CreateStartupRequest{
		Name:           name,
		Tagline:        "A short but valid tagline",
		Description:    "A description long enough to pass the minimum length rule for startups.",
		Industry:       "Software",
		Categories:     categories,
		BusinessType:   "B2B",
		TargetAudience: "Small teams",
		Website:        "https://example.com",
	}
}

func marketplace() (*fakeDirectory, Module) {
	directory := newFakeDirectory(
		ports.UserSummary{UserID: "founder-1", FullName: "Fatima Founder", Role: ports.RoleFounder},
		ports.UserSummary{UserID: "founder-2", FullName: "Felix Founder", Role: ports.RoleFounder},
		ports.UserSummary{UserID: "adopter-1", FullName: "Ada Adopter", Role: ports.RoleAdopter, Interests: []string{"AI", "SaaS"}},
		ports.UserSummary{UserID: "adopter-2", FullName: "Abe Adopter", Role: ports.RoleAdopter},
	)
	return directory, NewInMemoryModule(directory, nil)
}

func TestFeedReturnsOnlyStartupsSharingAnInterest(t *testing.T) {
	_, module := marketplace()
	ctx := context.Background()

	a, err := module.Handler.CreateStartupHandler(ctx, "founder-1", startupRequest("Alpha", "SaaS"))
	if err != nil {
		t.Fatalf("create A failed: %v", err)
	}
	if _, err := module.Handler.CreateStartupHandler(ctx, "founder-2", startupRequest("Beta", "FinTech")); err != nil {
		t.Fatalf("create B failed: %v", err)
	}

	feed, err := module.Handler.FeedHandler(ctx, "adopter-1")
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(feed))
	}
	if feed[0].StartupID != a.Startup.StartupID {
		t.Fatalf("expected startup A, got %s", feed[0].StartupID)
	}
	if feed[0].Founder.FullName != "Fatima Founder" || feed[0].Founder.UserID != "founder-1" {
		t.Fatalf("expected founder name attached, got %+v", feed[0].Founder)
	}
}

func TestFeedKeepsInsertionOrder(t *testing.T) {
	_, module := marketplace()
	ctx := context.Background()

	first, err := module.Handler.CreateStartupHandler(ctx, "founder-1", startupRequest("First", "AI"))
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second, err := module.Handler.CreateStartupHandler(ctx, "founder-2", startupRequest("Second", "SaaS", "AI"))
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	feed, err := module.Handler.FeedHandler(ctx, "adopter-1")
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(feed) != 2 || feed[0].StartupID != first.Startup.StartupID || feed[1].StartupID != second.Startup.StartupID {
		t.Fatalf("expected insertion order, got %+v", feed)
	}
}

func TestFeedIsEmptyWithoutInterests(t *testing.T) {
	_, module := marketplace()
	ctx := context.Background()
	if _, err := module.Handler.CreateStartupHandler(ctx, "founder-1", startupRequest("Alpha", "SaaS")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	feed, err := module.Handler.FeedHandler(ctx, "adopter-2")
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if feed == nil || len(feed) != 0 {
		t.Fatalf("expected empty non-nil feed, got %#v", feed)
	}
}

func TestFeedIsEmptyForUnknownAdopter(t *testing.T) {
	_, module := marketplace()

	feed, err := module.Handler.FeedHandler(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("expected empty feed, got %d items", len(feed))
	}
}

func TestCreateStartupRequiresFounderRole(t *testing.T) {
	_, module := marketplace()
	ctx := context.Background()

	_, err := module.Handler.CreateStartupHandler(ctx, "adopter-1", startupRequest("Nope", "AI"))
	if !errors.Is(err, domainerrors.ErrNotFounder) {
		t.Fatalf("expected ErrNotFounder, got %v", err)
	}
	_, err = module.Handler.CreateStartupHandler(ctx, "ghost", startupRequest("Nope", "AI"))
	if !errors.Is(err, domainerrors.ErrFounderNotFound) {
		t.Fatalf("expected ErrFounderNotFound, got %v", err)
	}
}

func TestCreateStartupValidatesFields(t *testing.T) {
	_, module := marketplace()

	cases := map[string]func(*httptransport.CreateStartupRequest){
		"short name":        func(r *httptransport.CreateStartupRequest) { r.Name = "A" },
		"short tagline":     func(r *httptransport.CreateStartupRequest) { r.Tagline = "short" },
		"short description": func(r *httptransport.CreateStartupRequest) { r.Description = "too short" },
		"no categories":     func(r *httptransport.CreateStartupRequest) { r.Categories = []string{" ", ""} },
		"business type":     func(r *httptransport.CreateStartupRequest) { r.BusinessType = "B2G" },
		"website":           func(r *httptransport.CreateStartupRequest) { r.Website = "example.com" },
		"missing industry":  func(r *httptransport.CreateStartupRequest) { r.Industry = "  " },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := startupRequest("Valid", "AI")
			mutate(&req)
			_, err := module.Handler.CreateStartupHandler(context.Background(), "founder-1", req)
			if !errors.Is(err, domainerrors.ErrInvalidStartup) {
				t.Fatalf("expected ErrInvalidStartup, got %v", err)
			}
		})
	}
}

func TestCreateStartupNormalizesCategories(t *testing.T) {
	_, module := marketplace()

	resp, err := module.Handler.CreateStartupHandler(context.Background(), "founder-1", startupRequest("Alpha", " AI ", "SaaS", "AI"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	got := resp.Startup.Categories
	if len(got) != 2 || got[0] != "AI" || got[1] != "SaaS" {
		t.Fatalf("expected [AI SaaS], got %v", got)
	}
	if resp.Startup.FounderID != "founder-1" {
		t.Fatalf("expected founder id from session, got %s", resp.Startup.FounderID)
	}
}

func TestListFeedbackEnforcesOwnership(t *testing.T) {
	_, module := marketplace()
	ctx := context.Background()

	created, err := module.Handler.CreateStartupHandler(ctx, "founder-1", startupRequest("Alpha", "AI"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	startupID := created.Startup.StartupID

	if _, err := module.Handler.ListFeedbackHandler(ctx, startupID, "founder-2"); !errors.Is(err, domainerrors.ErrNotStartupOwner) {
		t.Fatalf("expected ErrNotStartupOwner, got %v", err)
	}
	if _, err := module.Handler.ListFeedbackHandler(ctx, "missing", "founder-1"); !errors.Is(err, domainerrors.ErrStartupNotFound) {
		t.Fatalf("expected ErrStartupNotFound, got %v", err)
	}

	items, err := module.Handler.ListFeedbackHandler(ctx, startupID, "founder-1")
	if err != nil {
		t.Fatalf("owner list failed: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", items)
	}
}

func TestSubmittedFeedbackIsListedWithAuthorName(t *testing.T) {
	_, module := marketplace()
	ctx := context.Background()

	created, err := module.Handler.CreateStartupHandler(ctx, "founder-1", startupRequest("Alpha", "AI"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	startupID := created.Startup.StartupID

	if _, err := module.Handler.SubmitFeedbackHandler(ctx, startupID, "adopter-1", httptransport.SubmitFeedbackRequest{
		Rating:  4,
		Comment: "  Useful product  ",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	items, err := module.Handler.ListFeedbackHandler(ctx, startupID, "founder-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one feedback item, got %d", len(items))
	}
	if items[0].User.FullName != "Ada Adopter" || items[0].Rating != 4 || items[0].Comment != "Useful product" {
		t.Fatalf("unexpected feedback item %+v", items[0])
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	_, module := marketplace()
	ctx := context.Background()

	if _, err := module.Handler.SubmitFeedbackHandler(ctx, "missing", "adopter-1", httptransport.SubmitFeedbackRequest{Rating: 3}); !errors.Is(err, domainerrors.ErrStartupNotFound) {
		t.Fatalf("expected ErrStartupNotFound, got %v", err)
	}

	created, err := module.Handler.CreateStartupHandler(ctx, "founder-1", startupRequest("Alpha", "AI"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	for _, rating := range []int{0, 6} {
		_, err := module.Handler.SubmitFeedbackHandler(ctx, created.Startup.StartupID, "adopter-1", httptransport.SubmitFeedbackRequest{Rating: rating})
		if !errors.Is(err, domainerrors.ErrInvalidFeedback) {
			t.Fatalf("rating %d: expected ErrInvalidFeedback, got %v", rating, err)
		}
	}
}
