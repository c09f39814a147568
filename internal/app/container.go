package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/agendaly/booking-backend/internal/api"
	"github.com/agendaly/booking-backend/internal/auth"
	"github.com/agendaly/booking-backend/internal/availability"
	"github.com/agendaly/booking-backend/internal/booking"
	"github.com/agendaly/booking-backend/internal/catalog"
	"github.com/agendaly/booking-backend/internal/customer"
	"github.com/agendaly/booking-backend/internal/notify"
	"github.com/agendaly/booking-backend/internal/pkg/ratelimit"
	"github.com/agendaly/booking-backend/internal/tenant"
	"github.com/agendaly/booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int

	SMTPHost  string
	SMTPPort  int
	EmailFrom string

	PublicRateLimit  int
	PublicRateWindow time.Duration

	Logger *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	var notifier notify.Sender
	if cfg.SMTPHost != "" {
		notifier = notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom)
	} else {
		notifier = notify.NewNoopSender()
	}

	// Tenant Module
	tenantRepo := tenant.NewPgxRepository(cfg.DBPool)
	tenantService := tenant.NewService(tenantRepo)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Catalog Module
	catalogRepo := catalog.NewPgxRepository(cfg.DBPool)
	catalogManager := catalog.NewManager(catalogRepo)

	// Customer Module
	customerRepo := customer.NewPgxRepository(cfg.DBPool)
	customerService := customer.NewService(customerRepo)

	// Availability Module
	availabilityRepo := availability.NewPgxRepository(cfg.DBPool)
	availabilityService := availability.NewService(availabilityRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, catalogManager, availabilityService, notifier, cfg.Logger)

	// API Router Config
	routerParams := api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		UserService:         userService,
		TenantService:       tenantService,
		CatalogManager:      catalogManager,
		CustomerService:     customerService,
		AvailabilityService: availabilityService,
		BookingService:      bookingService,
		JWTManager:          jwtManager,
		PublicLimiter:       ratelimit.New(cfg.PublicRateLimit, cfg.PublicRateWindow),
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
