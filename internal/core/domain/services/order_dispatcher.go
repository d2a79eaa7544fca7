package services

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"
)

// ErrNotDeliveryCrew is returned when the chosen user is not in the "Delivery Crew" group.
var ErrNotDeliveryCrew = errs.NewValueIsInvalidErrorWithCause(
	"delivery_crew",
	errors.New("user is not part of the delivery crew"),
)

// OrderDispatcher assigns orders to delivery crew members. Membership is checked
// at assignment time only; later group changes do not affect assigned orders.
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch validates crew and assigns o to them. On error o is unchanged.
func (d OrderDispatcher) Dispatch(o *order.Order, crew *identity.User) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := crew.Validate(); err != nil {
		return err
	}
	if err := o.Status().ValidateAssign(); err != nil {
		return err
	}
	if !crew.IsDeliveryCrew() {
		return ErrNotDeliveryCrew
	}

	return o.Assign(crew.ID())
}
