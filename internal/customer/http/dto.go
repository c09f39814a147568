package http

import (
	"time"

	"github.com/agendaly/booking-backend/internal/customer"
	"github.com/agendaly/booking-backend/internal/pkg/request"
)

type ListCustomersRequest struct {
	request.ListParams
	Search string `form:"search"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

type CreateCustomerBody struct {
	Name  string  `json:"name" binding:"required,min=2"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
}

type UpdateCustomerBody struct {
	Name  *string `json:"name" binding:"omitempty,min=2"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}
