package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendaly/booking-backend/internal/auth"
	"github.com/agendaly/booking-backend/internal/tenant"
)

// slugAttempts bounds the suffix search when the company name collides with
// existing slugs ("acme", "acme-1", "acme-2", ...).
const slugAttempts = 10

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Company  string
}

type Service interface {
	// Register creates the tenant (with a unique slug derived from the
	// company name) and its owner user.
	Register(ctx context.Context, req RegisterRequest) (*User, *tenant.Tenant, error)

	// Authenticate verifies credentials and returns the user on success.
	Authenticate(ctx context.Context, email, password string) (*User, error)

	GetByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{repo: repo, hasher: hasher}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, *tenant.Tenant, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password failed: %w", err)
	}

	base := tenant.Slugify(req.Company)

	for i := 0; i < slugAttempts; i++ {
		slug := base
		if i > 0 {
			slug = fmt.Sprintf("%s-%d", base, i)
		}

		u := &User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		}
		t := &tenant.Tenant{
			Slug:     slug,
			Name:     req.Company,
			Timezone: "UTC",
		}

		err := s.repo.CreateWithTenant(ctx, u, t)
		if err == nil {
			return u, t, nil
		}
		if errors.Is(err, tenant.ErrSlugTaken) {
			continue
		}
		return nil, nil, err
	}

	return nil, nil, tenant.ErrSlugTaken
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best effort; login must not fail because the timestamp update did.
	_ = s.repo.UpdateLastLogin(ctx, u.ID, time.Now().UTC())

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
