package tenant

import (
	"context"
	"time"
)

type UpdateSettingsRequest struct {
	Name         *string
	Timezone     *string
	BrandName    *string
	PrimaryColor *string
}

type Service interface {
	GetByID(ctx context.Context, id string) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	UpdateSettings(ctx context.Context, id string, req UpdateSettingsRequest) (*Tenant, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Tenant, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) UpdateSettings(ctx context.Context, id string, req UpdateSettingsRequest) (*Tenant, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Timezone != nil {
		// Reject unknown zones up front so availability computation never
		// silently falls back to UTC after a bad settings save.
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, ErrBadTimezone
		}
		t.Timezone = *req.Timezone
	}
	if req.BrandName != nil {
		t.BrandName = req.BrandName
	}
	if req.PrimaryColor != nil {
		t.PrimaryColor = req.PrimaryColor
	}

	if err := s.repo.UpdateSettings(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
