package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"courtbook/internal/config"
	"courtbook/internal/database"
	"courtbook/internal/middleware"
	"courtbook/internal/modules/auth"
	"courtbook/internal/modules/booking"
	"courtbook/internal/modules/court"
	"courtbook/internal/modules/feed"
	jwtsvc "courtbook/internal/pkg/jwt"
	"courtbook/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	courtRepo := repository.NewCourtRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := feed.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	courtService := court.NewService(courtRepo)
	courtHandler := court.NewHandler(courtService)

	bookingService := booking.NewService(courtRepo, reservationRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	feedHandler := feed.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))

		admin := protected.Group("/")
		admin.Use(middleware.AdminOnly())

		courtHandler.RegisterRoutes(v1, admin)
		bookingHandler.RegisterRoutes(protected)
		bookingHandler.RegisterCourtRoutes(v1, admin)
		feedHandler.RegisterRoutes(admin)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
