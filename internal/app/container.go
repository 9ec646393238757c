package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/generatik/adspace-booking-backend/internal/adspace"
	"github.com/generatik/adspace-booking-backend/internal/api"
	"github.com/generatik/adspace-booking-backend/internal/booking"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router         *gin.Engine
	AdSpaceRepo    adspace.Repository
	BookingRepo    booking.Repository
	AdSpaceService adspace.Service
	BookingService booking.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// AdSpace module
	adSpaceRepo := adspace.NewPgxRepository(cfg.DBPool)
	adSpaceService := adspace.NewService(adSpaceRepo)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, adSpaceService)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		AdSpaceService: adSpaceService,
		BookingService: bookingService,
	})

	return &Container{
		Router:         router,
		AdSpaceRepo:    adSpaceRepo,
		BookingRepo:    bookingRepo,
		AdSpaceService: adSpaceService,
		BookingService: bookingService,
	}
}
