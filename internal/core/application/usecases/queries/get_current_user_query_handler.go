package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// GetCurrentUserQueryHandler projects the authenticated caller. The caller
// was loaded by AuthenticateTokenQueryHandler for this request, so no
// further read is needed.
type GetCurrentUserQueryHandler struct {
	policy services.AccessPolicy
}

func NewGetCurrentUserQueryHandler() GetCurrentUserQueryHandler {
	return GetCurrentUserQueryHandler{policy: services.NewAccessPolicy()}
}

func (h GetCurrentUserQueryHandler) Handle(_ context.Context, query GetCurrentUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	if err := h.policy.Require(query.Actor(), services.ViewProfile); err != nil {
		return UserView{}, err
	}

	return NewUserView(query.Actor()), nil
}
