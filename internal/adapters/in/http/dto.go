package http

import (
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/category"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request bodies. Fields checked by the domain (slugs, prices, group names)
// carry no validate tags, so role checks are reported before input errors.

type CategoryRequest struct {
	Slug  string `json:"slug" example:"main-course"`
	Title string `json:"title" example:"Main Course"`
}

// MenuItemRequest accepts the price as a JSON string or number.
type MenuItemRequest struct {
	Title      string           `json:"title" example:"Greek Salad"`
	Price      *decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
	CategoryID uuid.UUID        `json:"category_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
}

type CartItemRequest struct {
	MenuItem uuid.UUID `json:"menuitem" validate:"required"`
	Quantity int       `json:"quantity" validate:"required" example:"2"`
}

type AssignDeliveryCrewRequest struct {
	DeliveryCrewID uuid.UUID `json:"delivery_crew_id"`
}

type DeliveryStatusRequest struct {
	Status string `json:"status" example:"out_for_delivery"`
}

type AssignGroupRequest struct {
	Group string `json:"group" example:"Managers"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=150" example:"mario"`
	Email    string `json:"email" validate:"omitempty,email,max=254" example:"mario@littlelemon.test"`
	Password string `json:"password" validate:"required" example:"lemon-tree-42"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Responses.

type CategoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Slug  string    `json:"slug"`
	Title string    `json:"title"`
}

type MenuItemResponse struct {
	ID       uuid.UUID        `json:"id"`
	Title    string           `json:"title"`
	Price    string           `json:"price" example:"12.50"`
	Featured bool             `json:"featured"`
	Category CategoryResponse `json:"category"`
}

type CartItemResponse struct {
	ID        uuid.UUID `json:"id"`
	User      uuid.UUID `json:"user"`
	MenuItem  uuid.UUID `json:"menuitem"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unit_price" example:"12.50"`
	Price     string    `json:"price" example:"25.00"`
}

type OrderItemResponse struct {
	ID        uuid.UUID `json:"id"`
	MenuItem  uuid.UUID `json:"menuitem"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unit_price"`
	Price     string    `json:"price"`
}

type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	User         uuid.UUID           `json:"user"`
	DeliveryCrew *uuid.UUID          `json:"delivery_crew"`
	Status       string              `json:"status" example:"pending"`
	Total        string              `json:"total" example:"37.50"`
	Date         string              `json:"date" example:"2024-05-01"`
	Items        []OrderItemResponse `json:"items"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsStaff  bool      `json:"is_staff"`
	Groups   []string  `json:"groups"`
}

type TokenResponse struct {
	AuthToken string `json:"auth_token"`
}

func toCategoryResponse(v queries.CategoryView) CategoryResponse {
	return CategoryResponse{ID: v.ID.Bytes(), Slug: v.Slug, Title: v.Title}
}

func categoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID().Bytes(), Slug: c.Slug(), Title: c.Title()}
}

func toMenuItemResponse(v queries.MenuItemView) MenuItemResponse {
	return MenuItemResponse{
		ID:       v.ID.Bytes(),
		Title:    v.Title,
		Price:    v.Price.String(),
		Featured: v.Featured,
		Category: toCategoryResponse(v.Category),
	}
}

func toMenuItemResponses(views []queries.MenuItemView) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toMenuItemResponse(v))
	}
	return out
}

func toCartItemResponse(v queries.CartItemView) CartItemResponse {
	return CartItemResponse{
		ID:        v.ID.Bytes(),
		User:      v.UserID.Bytes(),
		MenuItem:  v.MenuItemID.Bytes(),
		Quantity:  v.Quantity,
		UnitPrice: v.UnitPrice.String(),
		Price:     v.Price.String(),
	}
}

func cartItemResponse(line *cart.Item) CartItemResponse {
	return CartItemResponse{
		ID:        line.ID().Bytes(),
		User:      line.UserID().Bytes(),
		MenuItem:  line.MenuItemID().Bytes(),
		Quantity:  line.Quantity(),
		UnitPrice: line.UnitPrice().String(),
		Price:     line.Price().String(),
	}
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func crewRef(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	ref := id.Bytes()
	return &ref
}

func toOrderResponse(v queries.OrderView) OrderResponse {
	items := make([]OrderItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ID.Bytes(),
			MenuItem:  item.MenuItemID.Bytes(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Price:     item.Price.String(),
		})
	}

	return OrderResponse{
		ID:           v.ID.Bytes(),
		User:         v.UserID.Bytes(),
		DeliveryCrew: crewRef(v.DeliveryCrewID),
		Status:       v.Status.String(),
		Total:        v.Total.String(),
		Date:         formatDate(v.Date),
		Items:        items,
	}
}

func toOrderResponses(views []queries.OrderView) []OrderResponse {
	out := make([]OrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toOrderResponse(v))
	}
	return out
}

func orderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:        item.ID().Bytes(),
			MenuItem:  item.MenuItemID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
			Price:     item.Price().String(),
		})
	}

	return OrderResponse{
		ID:           o.ID().Bytes(),
		User:         o.CustomerID().Bytes(),
		DeliveryCrew: crewRef(o.DeliveryCrew()),
		Status:       o.Status().String(),
		Total:        o.Total().String(),
		Date:         formatDate(o.Date()),
		Items:        items,
	}
}

func toUserResponse(v queries.UserView) UserResponse {
	return UserResponse{
		ID:       v.ID.Bytes(),
		Username: v.Username,
		Email:    v.Email,
		IsStaff:  v.IsStaff,
		Groups:   v.Groups,
	}
}

func userResponse(u *identity.User) UserResponse {
	return toUserResponse(queries.NewUserView(u))
}
