package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// RegisterUser godoc
// @Summary  Create a customer account
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body     RegisterRequest true "account"
// @Success  201  {object} UserResponse
// @Failure  400  {object} ErrorResponse
// @Router   /users/ [post]
func (s *Server) RegisterUser(c echo.Context) error {
	var req RegisterRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	user, err := s.commands.RegisterUser.Handle(
		c.Request().Context(),
		commands.NewRegisterUserCommand(req.Username, req.Email, req.Password),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userResponse(user))
}

// GetCurrentUser godoc
// @Summary  The caller's account
// @Tags     users
// @Produce  json
// @Security TokenAuth
// @Success  200 {object} UserResponse
// @Failure  401 {object} ErrorResponse
// @Router   /users/me/ [get]
func (s *Server) GetCurrentUser(c echo.Context) error {
	view, err := s.queries.GetCurrentUser.Handle(c.Request().Context(), queries.NewGetCurrentUserQuery(Actor(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(view))
}

// AssignUserToGroup godoc
// @Summary  Add a user to a group (admin)
// @Tags     users
// @Accept   json
// @Produce  json
// @Security TokenAuth
// @Param    user_id path     string             true "user id"
// @Param    body    body     AssignGroupRequest true "group"
// @Success  200     {object} UserResponse
// @Failure  400     {object} ErrorResponse
// @Failure  403     {object} ErrorResponse
// @Failure  404     {object} ErrorResponse
// @Router   /users/{user_id}/assign-group/ [post]
func (s *Server) AssignUserToGroup(c echo.Context) error {
	userID, err := s.pathID(c, "user_id", services.AssignGroup)
	if err != nil {
		return err
	}

	var req AssignGroupRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	user, err := s.commands.AssignUserToGroup.Handle(
		c.Request().Context(),
		commands.NewAssignUserToGroupCommand(Actor(c), userID, req.Group),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse(user))
}

// Login godoc
// @Summary  Exchange credentials for an API token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body     LoginRequest true "credentials"
// @Success  200  {object} TokenResponse
// @Failure  400  {object} ErrorResponse
// @Failure  401  {object} ErrorResponse
// @Router   /token/login/ [post]
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	token, err := s.commands.Login.Handle(c.Request().Context(), commands.NewLoginCommand(req.Username, req.Password))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TokenResponse{AuthToken: token.Key()})
}

// Logout godoc
// @Summary  Revoke the presented token
// @Tags     auth
// @Security TokenAuth
// @Success  204
// @Failure  401 {object} ErrorResponse
// @Router   /token/logout/ [post]
func (s *Server) Logout(c echo.Context) error {
	err := s.commands.Logout.Handle(c.Request().Context(), commands.NewLogoutCommand(Actor(c), presentedToken(c)))
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
