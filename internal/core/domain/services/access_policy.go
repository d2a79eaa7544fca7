package services

import (
	"fmt"
	"strings"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"
)

// Operation names an action a caller can attempt against the API.
type Operation int

const (
	ListCategories Operation = iota + 1
	CreateCategory
	ListMenuItems
	ViewMenuItem
	BrowseMenu
	CreateMenuItem
	UpdateMenuItem
	DeleteMenuItem
	SetItemOfTheDay
	ViewCart
	AddToCart
	ClearCart
	ListOrders
	PlaceOrder
	ViewOrder
	AssignDeliveryCrew
	ListDeliveries
	ViewDelivery
	UpdateDelivery
	AssignGroup
	ViewProfile
	Logout
	Register
	Login
)

func getOperationStrings() map[Operation]string {
	return map[Operation]string{
		ListCategories:     "list categories",
		CreateCategory:     "add categories",
		ListMenuItems:      "list menu items",
		ViewMenuItem:       "view menu items",
		BrowseMenu:         "browse the menu",
		CreateMenuItem:     "add menu items",
		UpdateMenuItem:     "edit menu items",
		DeleteMenuItem:     "delete menu items",
		SetItemOfTheDay:    "update the item of the day",
		ViewCart:           "view the cart",
		AddToCart:          "add to the cart",
		ClearCart:          "clear the cart",
		ListOrders:         "list orders",
		PlaceOrder:         "place orders",
		ViewOrder:          "view orders",
		AssignDeliveryCrew: "assign orders to the delivery crew",
		ListDeliveries:     "list deliveries",
		ViewDelivery:       "view deliveries",
		UpdateDelivery:     "update deliveries",
		AssignGroup:        "assign users to groups",
		ViewProfile:        "view the profile",
		Logout:             "log out",
		Register:           "register",
		Login:              "log in",
	}
}

func (o Operation) String() string {
	if s, ok := getOperationStrings()[o]; ok {
		return s
	}
	return fmt.Sprintf("operation(%d)", int(o))
}

// Audience is the class of callers a Requirement admits.
type Audience int

const (
	// Anyone admits anonymous callers.
	Anyone Audience = iota
	// Authenticated admits any identified user.
	Authenticated
	// Staff admits users with the is_staff flag.
	Staff
	// GroupMember admits members of Requirement.Group.
	GroupMember
)

// Requirement is one row of the policy table.
type Requirement struct {
	Audience Audience
	Group    identity.Group
}

func member(g identity.Group) Requirement {
	return Requirement{Audience: GroupMember, Group: g}
}

// DefaultRules is the role table of the ordering API. Ownership (cart rows,
// orders, deliveries) is enforced by the handlers through scoped lookups, so
// those operations only require an authenticated caller here.
func DefaultRules() map[Operation]Requirement {
	authenticated := Requirement{Audience: Authenticated}
	staff := Requirement{Audience: Staff}
	anyone := Requirement{Audience: Anyone}

	return map[Operation]Requirement{
		ListCategories:     authenticated,
		CreateCategory:     staff,
		ListMenuItems:      authenticated,
		ViewMenuItem:       authenticated,
		BrowseMenu:         anyone,
		CreateMenuItem:     staff,
		UpdateMenuItem:     member(identity.Managers),
		DeleteMenuItem:     member(identity.Managers),
		SetItemOfTheDay:    member(identity.Managers),
		ViewCart:           authenticated,
		AddToCart:          authenticated,
		ClearCart:          authenticated,
		ListOrders:         authenticated,
		PlaceOrder:         authenticated,
		ViewOrder:          authenticated,
		AssignDeliveryCrew: member(identity.Managers),
		ListDeliveries:     authenticated,
		ViewDelivery:       authenticated,
		UpdateDelivery:     authenticated,
		AssignGroup:        staff,
		ViewProfile:        authenticated,
		Logout:             authenticated,
		Register:           anyone,
		Login:              anyone,
	}
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// DenyReason describes why a check was denied.
type DenyReason int

const (
	ReasonNone DenyReason = iota
	ReasonUnauthenticated
	ReasonNotStaff
	ReasonNotInGroup
	ReasonNoRule
)

func (r DenyReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUnauthenticated:
		return "caller is not authenticated"
	case ReasonNotStaff:
		return "caller is not staff"
	case ReasonNotInGroup:
		return "caller is not in the required group"
	case ReasonNoRule:
		return "no rule for operation"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Result carries the decision together with what was checked.
type Result struct {
	Decision    Decision
	Reason      DenyReason
	Operation   Operation
	Requirement Requirement
}

// Err converts a denial into the errs taxonomy: ErrUnauthenticated when no caller
// was supplied, ErrAccessDenied otherwise. It returns nil for Allow.
func (r Result) Err() error {
	if r.Decision == Allow {
		return nil
	}

	switch r.Reason {
	case ReasonUnauthenticated:
		return errs.NewUnauthenticatedError("")
	case ReasonNotStaff:
		return errs.NewAccessDeniedError(r.Operation.String(), "only admin can "+r.Operation.String())
	case ReasonNotInGroup:
		return errs.NewAccessDeniedError(
			r.Operation.String(),
			fmt.Sprintf("only %s can %s", strings.ToLower(r.Requirement.Group.String()), r.Operation),
		)
	default:
		return errs.NewAccessDeniedError(r.Operation.String(), "")
	}
}

// AccessPolicy evaluates callers against a table of Requirements.
type AccessPolicy struct {
	rules map[Operation]Requirement
}

// NewAccessPolicy returns a policy over DefaultRules.
func NewAccessPolicy() AccessPolicy {
	return NewAccessPolicyWithRules(DefaultRules())
}

func NewAccessPolicyWithRules(rules map[Operation]Requirement) AccessPolicy {
	return AccessPolicy{rules: rules}
}

// Authorize decides whether actor may perform op. A nil actor is anonymous.
// Operations missing from the table are denied.
func (p AccessPolicy) Authorize(actor *identity.User, op Operation) Result {
	req, ok := p.rules[op]
	if !ok {
		return Result{Decision: Deny, Reason: ReasonNoRule, Operation: op}
	}

	deny := func(reason DenyReason) Result {
		return Result{Decision: Deny, Reason: reason, Operation: op, Requirement: req}
	}

	if req.Audience == Anyone {
		return Result{Decision: Allow, Operation: op, Requirement: req}
	}
	if actor.Validate() != nil {
		return deny(ReasonUnauthenticated)
	}

	switch req.Audience {
	case Authenticated:
	case Staff:
		if !actor.IsStaff() {
			return deny(ReasonNotStaff)
		}
	case GroupMember:
		if !actor.InGroup(req.Group) {
			return deny(ReasonNotInGroup)
		}
	default:
		return deny(ReasonNoRule)
	}

	return Result{Decision: Allow, Operation: op, Requirement: req}
}

// Require is Authorize(actor, op).Err().
func (p AccessPolicy) Require(actor *identity.User, op Operation) error {
	return p.Authorize(actor, op).Err()
}
