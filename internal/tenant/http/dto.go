package http

import (
	"github.com/agendaly/booking-backend/internal/tenant"
)

type TenantResponse struct {
	ID           string  `json:"id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Timezone     string  `json:"timezone"`
	BrandName    *string `json:"brand_name"`
	PrimaryColor *string `json:"primary_color"`
}

func NewTenantResponse(t *tenant.Tenant) TenantResponse {
	return TenantResponse{
		ID:           t.ID,
		Slug:         t.Slug,
		Name:         t.Name,
		Timezone:     t.Timezone,
		BrandName:    t.BrandName,
		PrimaryColor: t.PrimaryColor,
	}
}

type UpdateSettingsBody struct {
	Name         *string `json:"name" binding:"omitempty,min=2"`
	Timezone     *string `json:"timezone"`
	BrandName    *string `json:"brand_name"`
	PrimaryColor *string `json:"primary_color" binding:"omitempty,hexcolor"`
}
