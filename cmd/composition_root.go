package cmd

import (
	httpin "littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) identityUoWFactory() commands.IdentityUoWFactory {
	return FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
}

// Commands

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateSetItemOfTheDayCommandHandler() commands.SetItemOfTheDayCommandHandler {
	return commands.NewSetItemOfTheDayCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryCrewCommandHandler() commands.AssignDeliveryCrewCommandHandler {
	return commands.NewAssignDeliveryCrewCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.identityUoWFactory(), c.config.TokenTTL)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateAssignUserToGroupCommandHandler() commands.AssignUserToGroupCommandHandler {
	return commands.NewAssignUserToGroupCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateEnsureAdminCommandHandler() commands.EnsureAdminCommandHandler {
	return commands.NewEnsureAdminCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateDeleteExpiredTokensCommandHandler() commands.DeleteExpiredTokensCommandHandler {
	return commands.NewDeleteExpiredTokensCommandHandler(c.identityUoWFactory())
}

// Queries

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCartItemsQueryHandler() queries.ListCartItemsQueryHandler {
	return queries.NewListCartItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCurrentUserQueryHandler() queries.GetCurrentUserQueryHandler {
	return queries.NewGetCurrentUserQueryHandler()
}

func (c *CompositionRoot) CreateAuthenticateTokenQueryHandler() queries.AuthenticateTokenQueryHandler {
	return queries.NewAuthenticateTokenQueryHandler(c.gormDB)
}

// HTTP

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateCategory:       c.CreateCreateCategoryCommandHandler(),
			CreateMenuItem:       c.CreateCreateMenuItemCommandHandler(),
			UpdateMenuItem:       c.CreateUpdateMenuItemCommandHandler(),
			DeleteMenuItem:       c.CreateDeleteMenuItemCommandHandler(),
			SetItemOfTheDay:      c.CreateSetItemOfTheDayCommandHandler(),
			AddCartItem:          c.CreateAddCartItemCommandHandler(),
			ClearCart:            c.CreateClearCartCommandHandler(),
			PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
			AssignDeliveryCrew:   c.CreateAssignDeliveryCrewCommandHandler(),
			UpdateDeliveryStatus: c.CreateUpdateDeliveryStatusCommandHandler(),
			RegisterUser:         c.CreateRegisterUserCommandHandler(),
			Login:                c.CreateLoginCommandHandler(),
			Logout:               c.CreateLogoutCommandHandler(),
			AssignUserToGroup:    c.CreateAssignUserToGroupCommandHandler(),
		},
		httpin.QueryHandlers{
			ListCategories: c.CreateListCategoriesQueryHandler(),
			ListMenuItems:  c.CreateListMenuItemsQueryHandler(),
			GetMenuItem:    c.CreateGetMenuItemQueryHandler(),
			ListCartItems:  c.CreateListCartItemsQueryHandler(),
			ListOrders:     c.CreateListOrdersQueryHandler(),
			GetOrder:       c.CreateGetOrderQueryHandler(),
			GetCurrentUser: c.CreateGetCurrentUserQueryHandler(),
		},
	)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}
