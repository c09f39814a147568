package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/agendaly/booking-backend/internal/auth"
	"github.com/agendaly/booking-backend/internal/availability"
	availabilityHttp "github.com/agendaly/booking-backend/internal/availability/http"
	"github.com/agendaly/booking-backend/internal/booking"
	bookingHttp "github.com/agendaly/booking-backend/internal/booking/http"
	"github.com/agendaly/booking-backend/internal/catalog"
	catalogHttp "github.com/agendaly/booking-backend/internal/catalog/http"
	"github.com/agendaly/booking-backend/internal/customer"
	customerHttp "github.com/agendaly/booking-backend/internal/customer/http"
	"github.com/agendaly/booking-backend/internal/pkg/ratelimit"
	"github.com/agendaly/booking-backend/internal/tenant"
	tenantHttp "github.com/agendaly/booking-backend/internal/tenant/http"
	"github.com/agendaly/booking-backend/internal/user"
	userHttp "github.com/agendaly/booking-backend/internal/user/http"
)

// Config holds everything the router needs to assemble middleware and
// register the module routes.
type Config struct {
	IsProduction bool
	ProdOrigins  []string

	UserService         user.Service
	TenantService       tenant.Service
	CatalogManager      catalog.Manager
	CustomerService     customer.Service
	AvailabilityService availability.Service
	BookingService      booking.Service

	JWTManager    *auth.JWTManager
	PublicLimiter *ratelimit.Limiter
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth, rate
// limiting) and registering routes for the modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // dashboard frontend
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.TenantService, cfg.JWTManager)
	tenantHandler := tenantHttp.NewHandler(cfg.TenantService)
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogManager, cfg.TenantService)
	customerHandler := customerHttp.NewHandler(cfg.CustomerService)
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilityService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.TenantService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler)
		tenantHttp.RegisterRoutes(v1, tenantHandler, authMiddleware)
		catalogHttp.RegisterRoutes(v1, catalogHandler, authMiddleware)
		customerHttp.RegisterRoutes(v1, customerHandler, authMiddleware)
		availabilityHttp.RegisterRoutes(v1, availabilityHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
	}

	// Public booking-page endpoints, keyed by tenant slug and rate limited
	// since they require no authentication.
	public := v1.Group("/public/:tenant")
	public.Use(cfg.PublicLimiter.Middleware())
	{
		catalogHttp.RegisterPublicRoutes(public, catalogHandler)
		bookingHttp.RegisterPublicRoutes(public, bookingHandler)
	}

	return r
}
