package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"launchpad/contexts/identity-access/account-service/domain/entities"
	domainerrors "launchpad/contexts/identity-access/account-service/domain/errors"
	"launchpad/contexts/identity-access/account-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const usersEmailConstraint = "users_email_key"

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

// Migrate creates or updates the users table.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&userModel{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	return nil
}

func (r *Repository) CreateUser(ctx context.Context, input ports.CreateUserInput) (entities.User, error) {
	row := userModelFromInput(input)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			if name := constraintName(err); name != "" && name != usersEmailConstraint {
				r.logger.Error("unexpected unique violation on users",
					"event", "account_repository_unique_violation",
					"module", "identity-access/account-service",
					"layer", "adapter",
					"constraint", name,
				)
				return entities.User{}, fmt.Errorf("insert user: %w", err)
			}
			return entities.User{}, domainerrors.ErrEmailAlreadyExists
		}
		return entities.User{}, fmt.Errorf("insert user: %w", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListUsersByIDs(ctx context.Context, userIDs []string) ([]entities.User, error) {
	if len(userIDs) == 0 {
		return []entities.User{}, nil
	}
	var rows []userModel
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateInterests(
	ctx context.Context,
	userID string,
	interests []string,
	updatedAt time.Time,
) (entities.User, error) {
	if interests == nil {
		interests = []string{}
	}
	var row userModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&userModel{}).
			Where("user_id = ?", userID).
			Select("interests", "updated_at").
			Updates(userModel{
				Interests: stringList(interests),
				UpdatedAt: updatedAt.UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrUserNotFound
		}
		return tx.Where("user_id = ?", userID).First(&row).Error
	})
	if err != nil {
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

type userModel struct {
	UserID       string     `gorm:"column:user_id;primaryKey"`
	FullName     string     `gorm:"column:full_name;not null"`
	Email        string     `gorm:"column:email;not null;uniqueIndex:users_email_key"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         string     `gorm:"column:role;not null;index"`
	Interests    stringList `gorm:"column:interests;type:jsonb;serializer:json"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string {
	return "users"
}

func userModelFromInput(input ports.CreateUserInput) userModel {
	interests := input.Interests
	if interests == nil {
		interests = []string{}
	}
	return userModel{
		UserID:       input.UserID,
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         string(input.Role),
		Interests:    stringList(interests),
		CreatedAt:    input.CreatedAt.UTC(),
		UpdatedAt:    input.CreatedAt.UTC(),
	}
}

func (m userModel) toEntity() entities.User {
	interests := []string(m.Interests)
	if interests == nil {
		interests = []string{}
	}
	return entities.User{
		UserID:       m.UserID,
		FullName:     m.FullName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.Role(m.Role),
		Interests:    append([]string(nil), interests...),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

// stringList is stored as a JSON array.
type stringList []string

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
