package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand moves an order the caller is delivering along
// the delivery workflow. Status is the wire name, e.g. "out_for_delivery".
type UpdateDeliveryStatusCommand struct {
	actor   *identity.User
	orderID kernel.UUID
	status  string

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(
	actor *identity.User,
	orderID kernel.UUID,
	status string,
) UpdateDeliveryStatusCommand {
	return UpdateDeliveryStatusCommand{
		actor:   actor,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) Actor() *identity.User {
	return c.actor
}

func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateDeliveryStatusCommand) Status() string {
	return c.status
}
