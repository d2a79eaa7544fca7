package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// ListCategories godoc
// @Summary  List categories
// @Tags     catalog
// @Produce  json
// @Security TokenAuth
// @Success  200 {array}  CategoryResponse
// @Failure  401 {object} ErrorResponse
// @Router   /categories/ [get]
func (s *Server) ListCategories(c echo.Context) error {
	categories, err := s.queries.ListCategories.Handle(c.Request().Context(), queries.NewListCategoriesQuery(Actor(c)))
	if err != nil {
		return err
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, v := range categories {
		response = append(response, toCategoryResponse(v))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCategory godoc
// @Summary  Add a category (admin)
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Security TokenAuth
// @Param    body body     CategoryRequest true "category"
// @Success  201  {object} CategoryResponse
// @Failure  400  {object} ErrorResponse
// @Failure  403  {object} ErrorResponse
// @Router   /categories/ [post]
func (s *Server) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	created, err := s.commands.CreateCategory.Handle(
		c.Request().Context(),
		commands.NewCreateCategoryCommand(Actor(c), req.Slug, req.Title),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, categoryResponse(created))
}

// ListCategoryMenuItems godoc
// @Summary  Menu items of a category
// @Tags     menu
// @Produce  json
// @Param    category_id path string true "category id"
// @Success  200 {array} MenuItemResponse
// @Router   /categories/{category_id}/menu-items/ [get]
func (s *Server) ListCategoryMenuItems(c echo.Context) error {
	categoryID, err := s.pathID(c, "category_id", services.BrowseMenu)
	if err != nil {
		return err
	}

	return s.listMenu(c, queries.NewListMenuItemsByCategoryQuery(Actor(c), categoryID))
}

// ListMenuItems godoc
// @Summary  List menu items
// @Tags     menu
// @Produce  json
// @Security TokenAuth
// @Success  200 {array}  MenuItemResponse
// @Failure  401 {object} ErrorResponse
// @Router   /menu-items/ [get]
func (s *Server) ListMenuItems(c echo.Context) error {
	return s.listMenu(c, queries.NewListMenuItemsQuery(Actor(c)))
}

// PaginateMenuItems godoc
// @Summary  One page of menu items
// @Tags     menu
// @Produce  json
// @Param    page_size   query int false "items per page (1..100)" default(10)
// @Param    page_number query int false "page, from 1" default(1)
// @Success  200 {array}  MenuItemResponse
// @Failure  400 {object} ErrorResponse
// @Router   /menu-items/paginate/ [get]
func (s *Server) PaginateMenuItems(c echo.Context) error {
	pageSize, err := queryInt(c, "page_size", queries.DefaultPageSize)
	if err != nil {
		return err
	}

	pageNumber, err := queryInt(c, "page_number", queries.DefaultPageNumber)
	if err != nil {
		return err
	}

	return s.listMenu(c, queries.NewListMenuItemsPageQuery(Actor(c), pageSize, pageNumber))
}

// SortMenuItemsByPrice godoc
// @Summary  Menu items cheapest first
// @Tags     menu
// @Produce  json
// @Success  200 {array} MenuItemResponse
// @Router   /menu-items/sort-by-price/ [get]
func (s *Server) SortMenuItemsByPrice(c echo.Context) error {
	return s.listMenu(c, queries.NewListMenuItemsByPriceQuery(Actor(c)))
}

func (s *Server) listMenu(c echo.Context, query queries.ListMenuItemsQuery) error {
	items, err := s.queries.ListMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// GetMenuItem godoc
// @Summary  Read a menu item
// @Tags     menu
// @Produce  json
// @Security TokenAuth
// @Param    id  path     string true "menu item id"
// @Success  200 {object} MenuItemResponse
// @Failure  404 {object} ErrorResponse
// @Router   /menu-items/{id}/ [get]
func (s *Server) GetMenuItem(c echo.Context) error {
	id, err := s.pathID(c, "id", services.ViewMenuItem)
	if err != nil {
		return err
	}

	return s.renderMenuItem(c, Actor(c), id, http.StatusOK)
}

// CreateMenuItem godoc
// @Summary  Add a menu item (admin)
// @Tags     menu
// @Accept   json
// @Produce  json
// @Security TokenAuth
// @Param    body body     MenuItemRequest true "menu item"
// @Success  201  {object} MenuItemResponse
// @Failure  400  {object} ErrorResponse
// @Failure  403  {object} ErrorResponse
// @Router   /menu-items/ [post]
func (s *Server) CreateMenuItem(c echo.Context) error {
	var req MenuItemRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	actor := Actor(c)
	item, err := s.commands.CreateMenuItem.Handle(
		c.Request().Context(),
		commands.NewCreateMenuItemCommand(actor, req.Title, priceString(req), kernelID(req.CategoryID)),
	)
	if err != nil {
		return err
	}

	return s.renderMenuItem(c, actor, item.ID(), http.StatusCreated)
}

// UpdateMenuItem godoc
// @Summary  Replace a menu item (Managers)
// @Tags     menu
// @Accept   json
// @Produce  json
// @Security TokenAuth
// @Param    id   path     string          true "menu item id"
// @Param    body body     MenuItemRequest true "menu item"
// @Success  200  {object} MenuItemResponse
// @Failure  400  {object} ErrorResponse
// @Failure  403  {object} ErrorResponse
// @Failure  404  {object} ErrorResponse
// @Router   /menu-items/{id}/ [put]
func (s *Server) UpdateMenuItem(c echo.Context) error {
	id, err := s.pathID(c, "id", services.UpdateMenuItem)
	if err != nil {
		return err
	}

	var req MenuItemRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	actor := Actor(c)
	_, err = s.commands.UpdateMenuItem.Handle(
		c.Request().Context(),
		commands.NewUpdateMenuItemCommand(actor, id, req.Title, priceString(req), kernelID(req.CategoryID)),
	)
	if err != nil {
		return err
	}

	return s.renderMenuItem(c, actor, id, http.StatusOK)
}

// DeleteMenuItem godoc
// @Summary  Delete a menu item (Managers)
// @Tags     menu
// @Security TokenAuth
// @Param    id path string true "menu item id"
// @Success  204
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /menu-items/{id}/ [delete]
func (s *Server) DeleteMenuItem(c echo.Context) error {
	id, err := s.pathID(c, "id", services.DeleteMenuItem)
	if err != nil {
		return err
	}

	err = s.commands.DeleteMenuItem.Handle(c.Request().Context(), commands.NewDeleteMenuItemCommand(Actor(c), id))
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// SetItemOfTheDay godoc
// @Summary  Feature a menu item (Managers)
// @Tags     menu
// @Produce  json
// @Security TokenAuth
// @Param    id  path     string true "menu item id"
// @Success  200 {object} MenuItemResponse
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /menu-items/{id}/set-item-of-the-day/ [post]
func (s *Server) SetItemOfTheDay(c echo.Context) error {
	id, err := s.pathID(c, "id", services.SetItemOfTheDay)
	if err != nil {
		return err
	}

	actor := Actor(c)
	if _, err = s.commands.SetItemOfTheDay.Handle(
		c.Request().Context(),
		commands.NewSetItemOfTheDayCommand(actor, id),
	); err != nil {
		return err
	}

	return s.renderMenuItem(c, actor, id, http.StatusOK)
}

// renderMenuItem reads the item back so the response carries its category.
func (s *Server) renderMenuItem(c echo.Context, actor *identity.User, id kernel.UUID, status int) error {
	view, err := s.queries.GetMenuItem.Handle(c.Request().Context(), queries.NewGetMenuItemQuery(actor, id))
	if err != nil {
		return err
	}
	return c.JSON(status, toMenuItemResponse(view))
}

func priceString(req MenuItemRequest) string {
	if req.Price == nil {
		return ""
	}
	return req.Price.String()
}
