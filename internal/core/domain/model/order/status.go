package order

import (
	"fmt"

	"littlelemon/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Assigned ──┬──> OutForDelivery ──> Delivered
//	  ↑            │  ↑    │                          ↑
//	  └ (place)    └──┘    └──────────────────────────┘
//	           (reassignment)
//
// Delivered is the only fulfilled state and is final.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a placed order with no delivery crew yet.
	Pending

	// Assigned means a manager picked a delivery crew member. Reassignment is
	// allowed until the order leaves the kitchen.
	Assigned

	// OutForDelivery means the assigned crew member picked the order up.
	OutForDelivery

	// Delivered means the order reached the customer.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Assigned:       "assigned",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Assigned:       "assigned",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
	}
}

// crewTransitions lists the moves a delivery crew member may make.
func crewTransitions() map[Status][]Status {
	//nolint:exhaustive // statuses without crew moves are absent
	return map[Status][]Status{
		Assigned:       {OutForDelivery, Delivered},
		OutForDelivery: {Delivered},
	}
}

// ParseStatus converts the wire name ("pending", "out_for_delivery", ...) to a Status.
func ParseStatus(name string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate rejects Unknown and out-of-range values read from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFulfilled reports whether the order has been delivered.
func (s Status) IsFulfilled() bool {
	return s == Delivered
}

// ValidateAssign checks that a delivery crew member can be (re)assigned.
func (s Status) ValidateAssign() error {
	if s != Pending && s != Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCrew checks the consistency between status and crew assignment:
// pending orders have no crew, every later status has one.
func (s Status) ValidateCanHaveCrew(crew bool) error {
	if crew && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a delivery crew", s.String()),
		)
	}

	if !crew && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no delivery crew", s.String()),
		)
	}

	return nil
}

// Assign transitions Pending or Assigned to Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// TransitionTo validates a delivery crew move from s to target.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	for _, allowed := range crewTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("cannot move from %s to %s", s.String(), target.String()),
	)
}
