// Package userrepo persists users, their group memberships and API tokens with GORM.
package userrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is the row of the users table.
type UserDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Username     string         `gorm:"size:150;not null;uniqueIndex"`
	Email        string         `gorm:"size:254;not null;default:''"`
	PasswordHash string         `gorm:"size:128;not null"`
	IsStaff      bool           `gorm:"not null;default:false"`
	Groups       []UserGroupDTO `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	DateJoined   time.Time      `gorm:"not null;autoCreateTime"`
}

func (UserDTO) TableName() string {
	return "users"
}

// UserGroupDTO is a single group membership.
type UserGroupDTO struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Group  string    `gorm:"column:group_name;size:150;primaryKey;index"`
}

func (UserGroupDTO) TableName() string {
	return "user_groups"
}

// TokenDTO is the row of the tokens table.
type TokenDTO struct {
	Key       string    `gorm:"size:40;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	User      *UserDTO  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (TokenDTO) TableName() string {
	return "tokens"
}

func fromDomain(u *identity.User) UserDTO {
	id := u.ID().Bytes()

	groups := make([]UserGroupDTO, 0, len(u.Groups()))
	for _, g := range u.Groups() {
		groups = append(groups, UserGroupDTO{UserID: id, Group: g.String()})
	}

	return UserDTO{
		ID:           id,
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		IsStaff:      u.IsStaff(),
		Groups:       groups,
	}
}

func toDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groups := make([]identity.Group, 0, len(dto.Groups))
	for _, g := range dto.Groups {
		groups = append(groups, identity.Group(g.Group))
	}

	return identity.RestoreUser(id, dto.Username, dto.Email, dto.PasswordHash, dto.IsStaff, groups)
}

func tokenFromDomain(t *identity.Token) TokenDTO {
	return TokenDTO{
		Key:       t.Key(),
		UserID:    t.UserID().Bytes(),
		CreatedAt: t.CreatedAt(),
		ExpiresAt: t.ExpiresAt(),
	}
}
