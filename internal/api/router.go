package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/generatik/adspace-booking-backend/internal/adspace"
	adspaceHttp "github.com/generatik/adspace-booking-backend/internal/adspace/http"
	"github.com/generatik/adspace-booking-backend/internal/booking"
	bookingHttp "github.com/generatik/adspace-booking-backend/internal/booking/http"
)

// Config carries the services and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	AdSpaceService adspace.Service
	BookingService booking.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, logging, recovery) and registers the
// catalog and booking routes under /api/v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(RequestLogger(), gin.Recovery())

	// Configure CORS. Dev defaults match the local frontend ports.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	adSpaceHandler := adspaceHttp.NewHandler(cfg.AdSpaceService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	v1 := r.Group("/api/v1")
	{
		adspaceHttp.RegisterRoutes(v1, adSpaceHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
	}

	return r
}
