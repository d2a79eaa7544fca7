package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// ListCartItems godoc
// @Summary  The caller's cart
// @Tags     cart
// @Produce  json
// @Security TokenAuth
// @Success  200 {array}  CartItemResponse
// @Failure  401 {object} ErrorResponse
// @Router   /cart/ [get]
func (s *Server) ListCartItems(c echo.Context) error {
	lines, err := s.queries.ListCartItems.Handle(c.Request().Context(), queries.NewListCartItemsQuery(Actor(c)))
	if err != nil {
		return err
	}

	response := make([]CartItemResponse, 0, len(lines))
	for _, v := range lines {
		response = append(response, toCartItemResponse(v))
	}
	return c.JSON(http.StatusOK, response)
}

// AddCartItem godoc
// @Summary  Put a menu item into the cart
// @Description Prices are taken from the menu. Adding an item already in the cart raises its quantity.
// @Tags     cart
// @Accept   json
// @Produce  json
// @Security TokenAuth
// @Param    body body     CartItemRequest true "cart line"
// @Success  201  {object} CartItemResponse
// @Failure  400  {object} ErrorResponse
// @Router   /cart/ [post]
func (s *Server) AddCartItem(c echo.Context) error {
	var req CartItemRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	line, err := s.commands.AddCartItem.Handle(
		c.Request().Context(),
		commands.NewAddCartItemCommand(Actor(c), kernelID(req.MenuItem), req.Quantity),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, cartItemResponse(line))
}

// ClearCart godoc
// @Summary  Empty the caller's cart
// @Tags     cart
// @Security TokenAuth
// @Success  204
// @Router   /cart/ [delete]
func (s *Server) ClearCart(c echo.Context) error {
	if err := s.commands.ClearCart.Handle(c.Request().Context(), commands.NewClearCartCommand(Actor(c))); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListOrders godoc
// @Summary  The caller's orders
// @Tags     orders
// @Produce  json
// @Security TokenAuth
// @Success  200 {array} OrderResponse
// @Router   /orders/ [get]
func (s *Server) ListOrders(c echo.Context) error {
	return s.listOrders(c, queries.NewListOrdersQuery(Actor(c)))
}

// PlaceOrder godoc
// @Summary  Check out the cart
// @Description Turns every cart line into an order line and empties the cart.
// @Tags     orders
// @Produce  json
// @Security TokenAuth
// @Success  201 {object} OrderResponse
// @Failure  400 {object} ErrorResponse "cart is empty"
// @Router   /orders/ [post]
func (s *Server) PlaceOrder(c echo.Context) error {
	placed, err := s.commands.PlaceOrder.Handle(c.Request().Context(), commands.NewPlaceOrderCommand(Actor(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, orderResponse(placed))
}

// GetOrder godoc
// @Summary  One of the caller's orders
// @Tags     orders
// @Produce  json
// @Security TokenAuth
// @Param    id  path     string true "order id"
// @Success  200 {object} OrderResponse
// @Failure  404 {object} ErrorResponse
// @Router   /orders/{id}/ [get]
func (s *Server) GetOrder(c echo.Context) error {
	id, err := s.pathID(c, "id", services.ViewOrder)
	if err != nil {
		return err
	}
	return s.getOrder(c, queries.NewGetOrderQuery(Actor(c), id))
}

// AssignDeliveryCrew godoc
// @Summary  Assign an order to a delivery crew member (Managers)
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security TokenAuth
// @Param    order_id path     string                    true "order id"
// @Param    body     body     AssignDeliveryCrewRequest true "crew member"
// @Success  200      {object} OrderResponse
// @Failure  400      {object} ErrorResponse
// @Failure  403      {object} ErrorResponse
// @Failure  404      {object} ErrorResponse
// @Router   /orders/{order_id}/assign-delivery-crew/ [post]
func (s *Server) AssignDeliveryCrew(c echo.Context) error {
	orderID, err := s.pathID(c, "order_id", services.AssignDeliveryCrew)
	if err != nil {
		return err
	}

	var req AssignDeliveryCrewRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	assigned, err := s.commands.AssignDeliveryCrew.Handle(
		c.Request().Context(),
		commands.NewAssignDeliveryCrewCommand(Actor(c), orderID, kernelID(req.DeliveryCrewID)),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderResponse(assigned))
}

// ListDeliveries godoc
// @Summary  Orders assigned to the caller
// @Tags     deliveries
// @Produce  json
// @Security TokenAuth
// @Success  200 {array} OrderResponse
// @Router   /delivery-orders/ [get]
func (s *Server) ListDeliveries(c echo.Context) error {
	return s.listOrders(c, queries.NewListDeliveriesQuery(Actor(c)))
}

// GetDelivery godoc
// @Summary  One order assigned to the caller
// @Tags     deliveries
// @Produce  json
// @Security TokenAuth
// @Param    id  path     string true "order id"
// @Success  200 {object} OrderResponse
// @Failure  404 {object} ErrorResponse
// @Router   /delivery-orders/{id}/ [get]
func (s *Server) GetDelivery(c echo.Context) error {
	id, err := s.pathID(c, "id", services.ViewDelivery)
	if err != nil {
		return err
	}
	return s.getOrder(c, queries.NewGetDeliveryQuery(Actor(c), id))
}

// UpdateDeliveryStatus godoc
// @Summary  Move an assigned order towards delivered
// @Tags     deliveries
// @Accept   json
// @Produce  json
// @Security TokenAuth
// @Param    id   path     string                true "order id"
// @Param    body body     DeliveryStatusRequest true "new status"
// @Success  200  {object} OrderResponse
// @Failure  400  {object} ErrorResponse
// @Failure  404  {object} ErrorResponse
// @Router   /delivery-orders/{id}/ [put]
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	id, err := s.pathID(c, "id", services.UpdateDelivery)
	if err != nil {
		return err
	}

	var req DeliveryStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	updated, err := s.commands.UpdateDeliveryStatus.Handle(
		c.Request().Context(),
		commands.NewUpdateDeliveryStatusCommand(Actor(c), id, req.Status),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderResponse(updated))
}

func (s *Server) listOrders(c echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.queries.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (s *Server) getOrder(c echo.Context, query queries.GetOrderQuery) error {
	view, err := s.queries.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(view))
}
