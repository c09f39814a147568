package catalog

import (
	"context"
)

type CreateRequest struct {
	TenantID        string
	Name            string
	DurationMinutes int
	PriceCents      *int
}

type UpdateRequest struct {
	Name            *string
	DurationMinutes *int
	PriceCents      *int
	Active          *bool
}

// Manager is the business layer over the service catalog. (The obvious name
// "Service" is already taken by the entity itself.)
type Manager interface {
	Create(ctx context.Context, req CreateRequest) (*Service, error)
	GetByID(ctx context.Context, tenantID, id string) (*Service, error)

	// GetBookable returns the service only if it exists and is active.
	GetBookable(ctx context.Context, tenantID, id string) (*Service, error)

	List(ctx context.Context, tenantID string) ([]*Service, error)
	ListActive(ctx context.Context, tenantID string) ([]*Service, error)
	Update(ctx context.Context, tenantID, id string, req UpdateRequest) (*Service, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type manager struct {
	repo Repository
}

func NewManager(repo Repository) Manager {
	return &manager{repo: repo}
}

func (m *manager) Create(ctx context.Context, req CreateRequest) (*Service, error) {
	s := &Service{
		TenantID:        req.TenantID,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		Active:          true,
	}
	if err := m.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *manager) GetByID(ctx context.Context, tenantID, id string) (*Service, error) {
	return m.repo.GetByID(ctx, tenantID, id)
}

func (m *manager) GetBookable(ctx context.Context, tenantID, id string) (*Service, error) {
	s, err := m.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if !s.Active {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *manager) List(ctx context.Context, tenantID string) ([]*Service, error) {
	return m.repo.List(ctx, tenantID, false)
}

func (m *manager) ListActive(ctx context.Context, tenantID string) ([]*Service, error) {
	return m.repo.List(ctx, tenantID, true)
}

func (m *manager) Update(ctx context.Context, tenantID, id string, req UpdateRequest) (*Service, error) {
	s, err := m.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.DurationMinutes != nil {
		s.DurationMinutes = *req.DurationMinutes
	}
	if req.PriceCents != nil {
		s.PriceCents = req.PriceCents
	}
	if req.Active != nil {
		s.Active = *req.Active
	}

	if err := m.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *manager) Delete(ctx context.Context, tenantID, id string) error {
	return m.repo.Delete(ctx, tenantID, id)
}
