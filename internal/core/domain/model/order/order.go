package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when checkout is attempted with an empty cart.
	ErrOrderHasNoItems = errs.NewValueIsInvalidErrorWithCause("items", errors.New("order must contain at least one item"))

	// MaxTotal is the largest total numeric(10,2) can hold.
	MaxTotal = kernel.MustMoney("99999999.99")
)

// Order is the aggregate root of the ordering workflow. A customer places it,
// a manager assigns it to a delivery crew member, and that crew member moves it
// towards Delivered.
//
// Order follows these invariants:
//   - Must have a valid identifier and customer
//   - Contains at least one item, with at most one line per menu item
//   - Total is the sum of the line prices and never exceeds MaxTotal
//   - Has a delivery crew member exactly when its status is past Pending
//   - Status transitions follow the rules of Status
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the user who placed the order and owns it
	customerID kernel.UUID

	// deliveryCrewID is the assigned crew member (nil while pending)
	deliveryCrewID *kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// total is the sum of the item prices at checkout
	total kernel.Money

	// date is the calendar day the order was placed, at UTC midnight
	date time.Time

	items []*Item

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder places a Pending order for customerID.
//
// Example:
//
//	line, _ := order.NewItem(kernel.NewUUID(), greekSalad.ID(), 2, greekSalad.Price())
//	o, err := order.NewOrder(kernel.NewUUID(), customer.ID(), time.Now(), []*order.Item{line})
//	if err != nil {
//	    // invalid input or empty cart
//	}
func NewOrder(id, customerID kernel.UUID, placedAt time.Time, items []*Item) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.date = truncateToDate(placedAt)
	return o, nil
}

// RestoreOrder rebuilds an order from persisted state, checking that the stored
// status and crew assignment agree.
func RestoreOrder(
	id, customerID kernel.UUID,
	deliveryCrewID *kernel.UUID,
	status Status,
	total kernel.Money,
	date time.Time,
	items []*Item,
) (*Order, error) {
	o := &Order{
		status:        status,
		total:         total,
		date:          truncateToDate(date),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		status.Validate(),
		o.restoreCrew(deliveryCrewID),
	); err != nil {
		return nil, err
	}

	o.items = slices.Clone(items)
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryCrew returns the assigned crew member or nil while pending.
func (o *Order) DeliveryCrew() *kernel.UUID {
	return o.deliveryCrewID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Date() time.Time {
	return o.date
}

func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.customerID.IsEqual(userID)
}

// IsAssignedTo reports whether userID is the order's delivery crew member.
func (o *Order) IsAssignedTo(userID kernel.UUID) bool {
	return o.deliveryCrewID != nil && o.deliveryCrewID.IsEqual(userID)
}

// Assign hands the order to a delivery crew member. Allowed while Pending or
// Assigned; the status becomes Assigned. Group membership of the crew member is
// checked by services.OrderDispatcher, not here.
func (o *Order) Assign(crewID kernel.UUID) error {
	if err := crewID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryCrewID = &crewID
	return nil
}

// AdvanceDelivery applies a status change requested by the delivery crew.
func (o *Order) AdvanceDelivery(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	var total kernel.Money
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.MenuItemID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("menu item %s appears more than once", item.MenuItemID()),
			)
		}
		seen[item.MenuItemID()] = struct{}{}
		total = total.Add(item.Price())
	}
	if total.GreaterThan(MaxTotal) {
		return errs.NewValueIsOutOfRangeError("total", total.String(), "0.01", MaxTotal.String())
	}

	o.items = slices.Clone(items)
	o.total = total
	return nil
}

func (o *Order) restoreCrew(crewID *kernel.UUID) error {
	if crewID != nil {
		if err := crewID.Validate(); err != nil {
			return err
		}
	}
	if err := o.status.ValidateCanHaveCrew(crewID != nil); err != nil {
		return err
	}
	o.deliveryCrewID = crewID
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
