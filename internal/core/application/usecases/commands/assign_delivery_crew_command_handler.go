package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

// AssignDeliveryCrewCommandHandler lets managers assign or reassign an order
// to a delivery crew member.
//
// Checks run in this order: manager role (403), order exists (404), crew id
// present (400), crew user exists (404), crew user is in "Delivery Crew" (400).
// On any failure the order is left untouched.
type AssignDeliveryCrewCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	dispatcher services.OrderDispatcher
}

func NewAssignDeliveryCrewCommandHandler(uowFactory OrderUoWFactory) AssignDeliveryCrewCommandHandler {
	return AssignDeliveryCrewCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		dispatcher: services.NewOrderDispatcher(),
	}
}

func (h AssignDeliveryCrewCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDeliveryCrewCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Require(cmd.Actor(), services.AssignDeliveryCrew); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.CrewID().Validate() != nil {
		return nil, errs.NewValueIsRequiredError("delivery_crew_id")
	}

	crew, err := uow.UserRepository().Get(ctx, cmd.CrewID())
	if err != nil {
		return nil, err
	}

	if err = h.dispatcher.Dispatch(o, crew); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
