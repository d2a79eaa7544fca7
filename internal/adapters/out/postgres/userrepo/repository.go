package userrepo

import (
	"context"
	"errors"

	"littlelemon/internal/adapters/out/postgres/pgerr"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user together with its group memberships.
func (r *GormUserRepository) Add(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewAlreadyExistsError("username", user.Username())
		}
		return err
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

// Update saves the staff flag and replaces the group memberships of an existing user.
func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	db := r.db.WithContext(ctx)

	result := db.Model(&UserDTO{}).Where("id = ?", dto.ID).Update("is_staff", dto.IsStaff)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", user.ID().String())
	}

	if err := db.Where("user_id = ?", dto.ID).Delete(&UserGroupDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Groups) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Groups).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).Preload("Groups").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a user by the exact username.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).Preload("Groups").First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", username)
		}
		return nil, err
	}

	return toDomain(dto)
}
