package userrepo

import (
	"context"
	"time"

	"littlelemon/internal/adapters/out/postgres/pgerr"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTokenRepository implements ports.TokenRepository using GORM.
type GormTokenRepository struct {
	db *gorm.DB
}

func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{db: db}
}

// Add saves a freshly issued token. Tokens of unknown users are rejected.
func (r *GormTokenRepository) Add(ctx context.Context, token *identity.Token) error {
	if err := token.Validate(); err != nil {
		return err
	}

	dto := tokenFromDomain(token)
	if err := r.db.WithContext(ctx).Omit("User").Create(&dto).Error; err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return errs.NewObjectNotFoundError("user", token.UserID().String())
		}
		return err
	}
	return nil
}

// Delete removes the token with the given key.
func (r *GormTokenRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errs.NewValueIsRequiredError("token")
	}

	result := r.db.WithContext(ctx).Delete(&TokenDTO{}, "key = ?", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("token", "***")
	}
	return nil
}

// DeleteExpired removes every token whose expiry is not after now.
func (r *GormTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&TokenDTO{})
	return result.RowsAffected, result.Error
}
