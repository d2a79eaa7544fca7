package identity

import (
	"errors"
	"strings"

	"littlelemon/internal/pkg/errs"
)

// Group is a named role group. Only the groups listed in KnownGroups exist.
type Group string

const (
	Managers     Group = "Managers"
	DeliveryCrew Group = "Delivery Crew"
)

// ErrGroupNameIsRequired is returned by ParseGroup for blank input.
var ErrGroupNameIsRequired = errs.NewValueIsRequiredErrorWithCause("group", errors.New("group name is required"))

// KnownGroups lists every group a user can be assigned to.
func KnownGroups() []Group {
	return []Group{Managers, DeliveryCrew}
}

// ParseGroup resolves a group by name. Unknown names are reported as not found,
// matching how a lookup in a groups table would fail.
func ParseGroup(name string) (Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrGroupNameIsRequired
	}
	for _, g := range KnownGroups() {
		if string(g) == name {
			return g, nil
		}
	}
	return "", errs.NewObjectNotFoundErrorWithCause("group", name, errors.New("group not found"))
}

func (g Group) String() string {
	return string(g)
}
