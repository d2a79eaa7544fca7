package identity

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

const tokenKeyBytes = 20

var ErrTokenIsNotConstructed = errors.New("Token must be created via IssueToken constructor")

// Token is an opaque API key presented as "Authorization: Token <key>".
type Token struct {
	key       string
	userID    kernel.UUID
	createdAt time.Time
	expiresAt time.Time

	isConstructed bool
}

// IssueToken creates a random 40 hex character key for userID valid for ttl.
func IssueToken(userID kernel.UUID, now time.Time, ttl time.Duration) (*Token, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("token ttl", fmt.Errorf("%s is not positive", ttl))
	}

	raw := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generate token key: %w", err)
	}

	return &Token{
		key:           hex.EncodeToString(raw),
		userID:        userID,
		createdAt:     now.UTC(),
		expiresAt:     now.Add(ttl).UTC(),
		isConstructed: true,
	}, nil
}

// RestoreToken rebuilds a persisted token.
func RestoreToken(key string, userID kernel.UUID, createdAt, expiresAt time.Time) (*Token, error) {
	if key == "" {
		return nil, errs.NewValueIsRequiredError("token key")
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return &Token{
		key:           key,
		userID:        userID,
		createdAt:     createdAt,
		expiresAt:     expiresAt,
		isConstructed: true,
	}, nil
}

func (t *Token) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTokenIsNotConstructed
	}
	return nil
}

func (t *Token) Key() string {
	return t.key
}

func (t *Token) UserID() kernel.UUID {
	return t.userID
}

func (t *Token) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Token) ExpiresAt() time.Time {
	return t.expiresAt
}

func (t *Token) IsExpired(now time.Time) bool {
	return !now.Before(t.expiresAt)
}
