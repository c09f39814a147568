package user

import (
	"context"
	"testing"
	"time"

	"github.com/agendaly/booking-backend/internal/tenant"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	takenSlugs map[string]bool
	created    []*tenant.Tenant
	byEmail    map[string]*User
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) GetByID(_ context.Context, _ string) (*User, error) {
	return nil, ErrNotFound
}

func (f *fakeRepo) CreateWithTenant(_ context.Context, u *User, t *tenant.Tenant) error {
	if f.takenSlugs[t.Slug] {
		return tenant.ErrSlugTaken
	}
	t.ID = "tenant-" + t.Slug
	u.ID = "user-" + u.Email
	u.TenantID = t.ID
	f.created = append(f.created, t)
	return nil
}

func (f *fakeRepo) UpdateLastLogin(_ context.Context, _ string, _ time.Time) error {
	return nil
}

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return ErrInvalidCredentials
	}
	return nil
}

func TestRegisterPicksFreeSlug(t *testing.T) {
	repo := &fakeRepo{takenSlugs: map[string]bool{"acme": true, "acme-1": true}}
	svc := NewService(repo, plainHasher{})

	u, tn, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "secret",
		Company:  "ACME",
	})
	require.NoError(t, err)
	require.Equal(t, "acme-2", tn.Slug)
	require.Equal(t, tn.ID, u.TenantID)
	require.Equal(t, "hashed:secret", u.PasswordHash)
	require.Equal(t, "UTC", tn.Timezone)
}

func TestAuthenticate(t *testing.T) {
	repo := &fakeRepo{byEmail: map[string]*User{
		"owner@example.com": {ID: "u1", Email: "owner@example.com", PasswordHash: "hashed:secret"},
	}}
	svc := NewService(repo, plainHasher{})

	u, err := svc.Authenticate(context.Background(), "owner@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)

	_, err = svc.Authenticate(context.Background(), "owner@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials, "unknown email must not be distinguishable from bad password")
}
