package identity

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"unicode/utf8"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	maxUsernameLength = 150
	maxEmailLength    = 254
)

var (
	// ErrUserIsNotConstructed is returned when a User was not built by NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

// User is the identity aggregate. Its roles are derived from the staff flag and
// group memberships; see the package documentation.
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	isStaff      bool
	groups       []Group

	isConstructed bool
}

// NewUser registers a plain (customer) user with no groups.
func NewUser(id kernel.UUID, username, email, passwordHash string) (*User, error) {
	u := &User{
		groups:        make([]Group, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a user from persisted state.
func RestoreUser(
	id kernel.UUID,
	username, email, passwordHash string,
	isStaff bool,
	groups []Group,
) (*User, error) {
	u, err := NewUser(id, username, email, passwordHash)
	if err != nil {
		return nil, err
	}

	u.isStaff = isStaff
	for _, g := range groups {
		if err = u.JoinGroup(g); err != nil {
			return nil, err
		}
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsStaff reports the admin flag. Staff may create categories and menu items and
// assign users to groups.
func (u *User) IsStaff() bool {
	return u.isStaff
}

// Groups returns the user's groups in a stable order.
func (u *User) Groups() []Group {
	return slices.Clone(u.groups)
}

func (u *User) InGroup(g Group) bool {
	return slices.Contains(u.groups, g)
}

func (u *User) IsManager() bool {
	return u.InGroup(Managers)
}

func (u *User) IsDeliveryCrew() bool {
	return u.InGroup(DeliveryCrew)
}

// JoinGroup adds the user to g. Joining a group twice is a no-op.
func (u *User) JoinGroup(g Group) error {
	if _, err := ParseGroup(string(g)); err != nil {
		return err
	}
	if u.InGroup(g) {
		return nil
	}
	u.groups = append(u.groups, g)
	slices.Sort(u.groups)
	return nil
}

// GrantStaff sets the admin flag.
func (u *User) GrantStaff() {
	u.isStaff = true
}

// CheckPassword compares raw against the stored bcrypt hash.
func (u *User) CheckPassword(raw string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(raw)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return errs.NewValueIsOutOfRangeError("username length", utf8.RuneCountInString(username), 1, maxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return errs.NewValueIsInvalidErrorWithCause(
			"username",
			fmt.Errorf("%q may contain only letters, digits and @/./+/-/_", username),
		)
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if len(email) > maxEmailLength {
		return errs.NewValueIsOutOfRangeError("email length", len(email), 0, maxEmailLength)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}
