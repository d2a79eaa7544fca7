package http

import (
	"fmt"
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CommandHandlers groups the write use cases served over HTTP.
type CommandHandlers struct {
	CreateCategory       commands.CreateCategoryCommandHandler
	CreateMenuItem       commands.CreateMenuItemCommandHandler
	UpdateMenuItem       commands.UpdateMenuItemCommandHandler
	DeleteMenuItem       commands.DeleteMenuItemCommandHandler
	SetItemOfTheDay      commands.SetItemOfTheDayCommandHandler
	AddCartItem          commands.AddCartItemCommandHandler
	ClearCart            commands.ClearCartCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	AssignDeliveryCrew   commands.AssignDeliveryCrewCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler
	RegisterUser         commands.RegisterUserCommandHandler
	Login                commands.LoginCommandHandler
	Logout               commands.LogoutCommandHandler
	AssignUserToGroup    commands.AssignUserToGroupCommandHandler
}

// QueryHandlers groups the read use cases served over HTTP.
type QueryHandlers struct {
	ListCategories queries.ListCategoriesQueryHandler
	ListMenuItems  queries.ListMenuItemsQueryHandler
	GetMenuItem    queries.GetMenuItemQueryHandler
	ListCartItems  queries.ListCartItemsQueryHandler
	ListOrders     queries.ListOrdersQueryHandler
	GetOrder       queries.GetOrderQueryHandler
	GetCurrentUser queries.GetCurrentUserQueryHandler
}

// Server maps HTTP requests onto command and query handlers. Handlers
// return errors; NewHTTPErrorHandler renders them.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	policy   services.AccessPolicy
}

func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		policy:   services.NewAccessPolicy(),
	}
}

// RegisterHandlers mounts the ordering API on g. Routes that need a caller
// reject anonymous requests before reading the body.
func RegisterHandlers(g *echo.Group, s *Server) {
	auth := RequireCaller

	g.GET("/categories", s.ListCategories, auth)
	g.POST("/categories", s.CreateCategory, auth)
	g.GET("/categories/:category_id/menu-items", s.ListCategoryMenuItems)

	g.GET("/menu-items", s.ListMenuItems, auth)
	g.POST("/menu-items", s.CreateMenuItem, auth)
	g.GET("/menu-items/paginate", s.PaginateMenuItems)
	g.GET("/menu-items/sort-by-price", s.SortMenuItemsByPrice)
	g.GET("/menu-items/:id", s.GetMenuItem, auth)
	g.PUT("/menu-items/:id", s.UpdateMenuItem, auth)
	g.DELETE("/menu-items/:id", s.DeleteMenuItem, auth)
	g.POST("/menu-items/:id/set-item-of-the-day", s.SetItemOfTheDay, auth)

	g.GET("/cart", s.ListCartItems, auth)
	g.POST("/cart", s.AddCartItem, auth)
	g.DELETE("/cart", s.ClearCart, auth)

	g.GET("/orders", s.ListOrders, auth)
	g.POST("/orders", s.PlaceOrder, auth)
	g.GET("/orders/:id", s.GetOrder, auth)
	g.POST("/orders/:order_id/assign-delivery-crew", s.AssignDeliveryCrew, auth)

	g.GET("/delivery-orders", s.ListDeliveries, auth)
	g.GET("/delivery-orders/:id", s.GetDelivery, auth)
	g.PUT("/delivery-orders/:id", s.UpdateDeliveryStatus, auth)

	g.POST("/users", s.RegisterUser)
	g.GET("/users/me", s.GetCurrentUser, auth)
	g.POST("/users/:user_id/assign-group", s.AssignUserToGroup, auth)

	g.POST("/token/login", s.Login)
	g.POST("/token/logout", s.Logout, auth)
}

// pathID binds a UUID path parameter. An id that is not a UUID cannot name
// an object, so it is reported as not found.
// pathID binds a uuid path parameter. A value that cannot name an object is
// reported as not found, but only to callers allowed to perform op.
func (s *Server) pathID(c echo.Context, name string, op services.Operation) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err == nil {
		var kid kernel.UUID
		if kid, err = kernel.UUIDFromBytes(id[:]); err == nil {
			return kid, nil
		}
	}

	if denied := s.policy.Require(Actor(c), op); denied != nil {
		return kernel.UUID{}, denied
	}
	return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause(name, c.Param(name), err)
}

// queryInt binds an optional integer query parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) (int, error) {
	var value *int
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	if value == nil {
		return def, nil
	}
	return *value, nil
}

// bindBody decodes a JSON body and runs its validate tags.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return c.Validate(dst)
}

// kernelID converts a body id. The zero UUID becomes the zero kernel.UUID,
// which the domain reports as a missing value.
func kernelID(id uuid.UUID) kernel.UUID {
	kid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return kid
}
