package queries

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidToken = errs.NewUnauthenticatedError("invalid token")
	ErrTokenExpired = errs.NewUnauthenticatedError("token has expired")
)

type tokenUserRow struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	IsStaff      bool
	ExpiresAt    time.Time
}

// AuthenticateTokenQueryHandler backs the "Authorization: Token <key>" header.
// It returns the full user aggregate because command handlers take the caller
// as an *identity.User.
type AuthenticateTokenQueryHandler struct {
	db *gorm.DB
}

func NewAuthenticateTokenQueryHandler(db *gorm.DB) AuthenticateTokenQueryHandler {
	return AuthenticateTokenQueryHandler{db: db}
}

func (h AuthenticateTokenQueryHandler) Handle(ctx context.Context, query AuthenticateTokenQuery) (*identity.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Key() == "" {
		return nil, ErrInvalidToken
	}

	db := h.db.WithContext(ctx)

	var users []tokenUserRow
	err := db.Raw(`
		SELECT
			u.id,
			u.username,
			u.email,
			u.password_hash,
			u.is_staff,
			t.expires_at
		FROM tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.key = ?
	`, query.Key()).Scan(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrInvalidToken
	}

	row := users[0]
	if !query.Now().Before(row.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	var groupNames []string
	err = db.Raw(`SELECT group_name FROM user_groups WHERE user_id = ? ORDER BY group_name`, row.ID).
		Scan(&groupNames).Error
	if err != nil {
		return nil, err
	}

	groups := make([]identity.Group, 0, len(groupNames))
	for _, name := range groupNames {
		g, groupErr := identity.ParseGroup(name)
		if groupErr != nil {
			return nil, groupErr
		}
		groups = append(groups, g)
	}

	id, err := idFromRow(row.ID)
	if err != nil {
		return nil, err
	}

	return identity.RestoreUser(id, row.Username, row.Email, row.PasswordHash, row.IsStaff, groups)
}
