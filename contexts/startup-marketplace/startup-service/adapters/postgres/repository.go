package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"launchpad/contexts/startup-marketplace/startup-service/domain/entities"
	domainerrors "launchpad/contexts/startup-marketplace/startup-service/domain/errors"
	"launchpad/contexts/startup-marketplace/startup-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository stores startups, their category index and feedback.
// It reads the users table owned by the account module only to lock the
// founder row while a startup is inserted.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates or updates startup tables. The users table must exist.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&startupModel{}, &startupCategoryModel{}, &feedbackModel{}); err != nil {
		return fmt.Errorf("migrate startups: %w", err)
	}
	return nil
}

func (r *Repository) CreateStartup(ctx context.Context, startup entities.Startup) (entities.Startup, error) {
	row := startupModelFromEntity(startup)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var founder founderModel
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Where("user_id = ?", startup.FounderID).
			First(&founder).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrFounderNotFound
			}
			return err
		}
		if founder.Role != ports.RoleFounder {
			return domainerrors.ErrNotFounder
		}

		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrRepositoryBroken
			}
			return err
		}

		categoryRows := make([]startupCategoryModel, 0, len(startup.Categories))
		for position, category := range startup.Categories {
			categoryRows = append(categoryRows, startupCategoryModel{
				StartupID: startup.StartupID,
				Category:  category,
				Position:  position,
			})
		}
		if len(categoryRows) > 0 {
			if err := tx.Create(&categoryRows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Startup{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetStartup(ctx context.Context, startupID string) (entities.Startup, bool, error) {
	var row startupModel
	err := r.db.WithContext(ctx).
		Where("startup_id = ?", startupID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Startup{}, false, nil
		}
		return entities.Startup{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListStartupsByCategories(ctx context.Context, categories []string) ([]entities.Startup, error) {
	if len(categories) == 0 {
		return []entities.Startup{}, nil
	}

	db := r.db.WithContext(ctx)
	matching := db.Model(&startupCategoryModel{}).
		Select("startup_id").
		Where("category IN ?", categories)

	var rows []startupModel
	if err := db.
		Where("startup_id IN (?)", matching).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: false}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "startup_id"}, Desc: false}).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Startup, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateFeedback(ctx context.Context, feedback entities.Feedback) (entities.Feedback, error) {
	row := feedbackModelFromEntity(feedback)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isForeignKeyViolation(err) {
			return entities.Feedback{}, domainerrors.ErrStartupNotFound
		}
		return entities.Feedback{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListFeedbackByStartup(ctx context.Context, startupID string) ([]entities.Feedback, error) {
	var rows []feedbackModel
	if err := r.db.WithContext(ctx).
		Where("startup_id = ?", startupID).
		Order("created_at ASC").
		Order("feedback_id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Feedback, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type founderModel struct {
	UserID string `gorm:"column:user_id;primaryKey"`
	Role   string `gorm:"column:role"`
}

func (founderModel) TableName() string {
	return "users"
}

type startupModel struct {
	StartupID      string    `gorm:"column:startup_id;primaryKey"`
	FounderID      string    `gorm:"column:founder_id;not null;index"`
	Name           string    `gorm:"column:name;not null"`
	Tagline        string    `gorm:"column:tagline;not null"`
	Description    string    `gorm:"column:description;not null"`
	Industry       string    `gorm:"column:industry;not null"`
	Categories     []string  `gorm:"column:categories;type:jsonb;serializer:json"`
	BusinessType   string    `gorm:"column:business_type;not null"`
	TargetAudience string    `gorm:"column:target_audience;not null"`
	Website        string    `gorm:"column:website;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;index"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (startupModel) TableName() string {
	return "startups"
}

func startupModelFromEntity(startup entities.Startup) startupModel {
	return startupModel{
		StartupID:      startup.StartupID,
		FounderID:      startup.FounderID,
		Name:           startup.Name,
		Tagline:        startup.Tagline,
		Description:    startup.Description,
		Industry:       startup.Industry,
		Categories:     append([]string(nil), startup.Categories...),
		BusinessType:   string(startup.BusinessType),
		TargetAudience: startup.TargetAudience,
		Website:        startup.Website,
		CreatedAt:      startup.CreatedAt.UTC(),
		UpdatedAt:      startup.UpdatedAt.UTC(),
	}
}

func (m startupModel) toEntity() entities.Startup {
	return entities.Startup{
		StartupID:      m.StartupID,
		FounderID:      m.FounderID,
		Name:           m.Name,
		Tagline:        m.Tagline,
		Description:    m.Description,
		Industry:       m.Industry,
		Categories:     append([]string(nil), m.Categories...),
		BusinessType:   entities.BusinessType(m.BusinessType),
		TargetAudience: m.TargetAudience,
		Website:        m.Website,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

// startupCategoryModel indexes categories for the feed intersection query.
type startupCategoryModel struct {
	StartupID string `gorm:"column:startup_id;primaryKey"`
	Category  string `gorm:"column:category;primaryKey;index"`
	Position  int    `gorm:"column:position"`
}

func (startupCategoryModel) TableName() string {
	return "startup_categories"
}

type feedbackModel struct {
	FeedbackID string    `gorm:"column:feedback_id;primaryKey"`
	StartupID  string    `gorm:"column:startup_id;not null;index"`
	UserID     string    `gorm:"column:user_id;not null"`
	Rating     int       `gorm:"column:rating;not null"`
	Comment    string    `gorm:"column:comment"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (feedbackModel) TableName() string {
	return "startup_feedback"
}

func feedbackModelFromEntity(feedback entities.Feedback) feedbackModel {
	return feedbackModel{
		FeedbackID: feedback.FeedbackID,
		StartupID:  feedback.StartupID,
		UserID:     feedback.UserID,
		Rating:     feedback.Rating,
		Comment:    feedback.Comment,
		CreatedAt:  feedback.CreatedAt.UTC(),
	}
}

func (m feedbackModel) toEntity() entities.Feedback {
	return entities.Feedback{
		FeedbackID: m.FeedbackID,
		StartupID:  m.StartupID,
		UserID:     m.UserID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
