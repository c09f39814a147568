package customer

import (
	"context"
)

type CreateRequest struct {
	TenantID string
	Name     string
	Email    string
	Phone    *string
}

type UpdateRequest struct {
	Name  *string
	Email *string
	Phone *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Customer, error)
	GetByID(ctx context.Context, tenantID, id string) (*Customer, error)
	List(ctx context.Context, tenantID string, filter Filter) ([]*Customer, int, error)
	Update(ctx context.Context, tenantID, id string, req UpdateRequest) (*Customer, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Customer, error) {
	c := &Customer{
		TenantID: req.TenantID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, tenantID, id string) (*Customer, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *service) List(ctx context.Context, tenantID string, filter Filter) ([]*Customer, int, error) {
	return s.repo.List(ctx, tenantID, filter)
}

func (s *service) Update(ctx context.Context, tenantID, id string, req UpdateRequest) (*Customer, error) {
	c, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = req.Phone
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, tenantID, id string) error {
	return s.repo.Delete(ctx, tenantID, id)
}
