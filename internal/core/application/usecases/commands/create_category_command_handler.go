package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/category"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
)

// CreateCategoryCommandHandler creates categories.
//
// Example:
//
//	handler := NewCreateCategoryCommandHandler(uowFactory)
//	cmd := NewCreateCategoryCommand(admin, "main-course", "Main Course")
//	c, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAccessDenied):
//	    // caller is not staff
//	case errors.Is(err, errs.ErrAlreadyExists):
//	    // slug taken
//	}
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle authorizes the caller, validates slug and title and stores the category.
func (h CreateCategoryCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCategoryCommand,
) (*category.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Require(cmd.Actor(), services.CreateCategory); err != nil {
		return nil, err
	}

	c, err := category.NewCategory(kernel.NewUUID(), cmd.Slug(), cmd.Title())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CategoryRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
