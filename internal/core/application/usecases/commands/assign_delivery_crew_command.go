package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrAssignDeliveryCrewCommandIsNotConstructed = errors.New(
	"AssignDeliveryCrewCommand must be created via NewAssignDeliveryCrewCommand constructor",
)

// AssignDeliveryCrewCommand hands an order to a member of the delivery crew.
// A zero crewID means the client sent none.
type AssignDeliveryCrewCommand struct {
	actor   *identity.User
	orderID kernel.UUID
	crewID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDeliveryCrewCommand(actor *identity.User, orderID, crewID kernel.UUID) AssignDeliveryCrewCommand {
	return AssignDeliveryCrewCommand{
		actor:   actor,
		orderID: orderID,
		crewID:  crewID,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c AssignDeliveryCrewCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCrewCommandIsNotConstructed)
}

func (c AssignDeliveryCrewCommand) Actor() *identity.User {
	return c.actor
}

func (c AssignDeliveryCrewCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignDeliveryCrewCommand) CrewID() kernel.UUID {
	return c.crewID
}
