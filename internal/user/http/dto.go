package http

import (
	"github.com/agendaly/booking-backend/internal/tenant"
	"github.com/agendaly/booking-backend/internal/user"
)

type RegisterBody struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Company  string `json:"company" binding:"required,min=2"`
}

type LoginBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterResponse struct {
	User   UserResponse `json:"user"`
	Tenant TenantTag    `json:"tenant"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
	Tenant      TenantTag    `json:"tenant"`
}

// TenantTag is the minimal tenant reference embedded in auth responses.
type TenantTag struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func NewTenantTag(t *tenant.Tenant) TenantTag {
	return TenantTag{ID: t.ID, Slug: t.Slug, Name: t.Name}
}
