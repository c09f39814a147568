package http

import (
	"net/http"

	"github.com/agendaly/booking-backend/internal/auth"
	"github.com/agendaly/booking-backend/internal/pkg/response"
	"github.com/agendaly/booking-backend/internal/tenant"
	"github.com/agendaly/booking-backend/internal/user"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service       user.Service
	tenantService tenant.Service
	jwtManager    *auth.JWTManager
}

func NewHandler(service user.Service, tenantService tenant.Service, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		service:       service,
		tenantService: tenantService,
		jwtManager:    jwtManager,
	}
}

func (h *Handler) Register(c *gin.Context) {
	var body RegisterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	u, t, err := h.service.Register(c.Request.Context(), user.RegisterRequest{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Company:  body.Company,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		User:   NewUserResponse(u),
		Tenant: NewTenantTag(t),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, err := h.service.Authenticate(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.tenantService.GetByID(c.Request.Context(), u.TenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.TenantID, u.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		User:        NewUserResponse(u),
		Tenant:      NewTenantTag(t),
	})
}
