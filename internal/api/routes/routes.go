package routes

import (
	"rental-marketplace-backend/internal/api/handlers"
	"rental-marketplace-backend/internal/api/middleware"
	"rental-marketplace-backend/internal/config"
	"rental-marketplace-backend/internal/repository"
	"rental-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	ownerRepo := repository.NewOwnerRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	apartmentRepo := repository.NewApartmentRepository(db)
	ownershipRepo := repository.NewOwnershipRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	ownerService := service.NewOwnerService(ownerRepo, ownershipRepo, validator)
	customerService := service.NewCustomerService(customerRepo, validator)
	apartmentService := service.NewApartmentService(apartmentRepo, validator)
	bookingService := service.NewBookingService(reservationRepo, reviewRepo, validator)
	ratingService := service.NewRatingService(analyticsRepo)
	recommendationService := service.NewRecommendationService(analyticsRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, cfg.ProfitMargin)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	ownerHandler := handlers.NewOwnerHandler(ownerService, ratingService)
	customerHandler := handlers.NewCustomerHandler(customerService, recommendationService)
	apartmentHandler := handlers.NewApartmentHandler(apartmentService, ownerService, ratingService)
	reservationHandler := handlers.NewReservationHandler(bookingService)
	reviewHandler := handlers.NewReviewHandler(bookingService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Owner routes
		owners := v1.Group("/owners")
		{
			owners.POST("", ownerHandler.CreateOwner)
			owners.GET("/:id", ownerHandler.GetOwner)
			owners.DELETE("/:id", ownerHandler.DeleteOwner)
			owners.GET("/:id/apartments", ownerHandler.GetOwnerApartments)
			owners.POST("/:id/apartments/:apartmentId", ownerHandler.ClaimApartment)
			owners.DELETE("/:id/apartments/:apartmentId", ownerHandler.DropApartment)
			owners.GET("/:id/rating", ownerHandler.GetOwnerRating)
		}

		// Customer routes
		customers := v1.Group("/customers")
		{
			customers.POST("", customerHandler.CreateCustomer)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
			customers.GET("/:id/recommendations", customerHandler.GetRecommendations)
		}

		// Apartment routes
		apartments := v1.Group("/apartments")
		{
			apartments.POST("", apartmentHandler.CreateApartment)
			apartments.GET("/:id", apartmentHandler.GetApartment)
			apartments.DELETE("/:id", apartmentHandler.DeleteApartment)
			apartments.GET("/:id/owner", apartmentHandler.GetApartmentOwner)
			apartments.GET("/:id/rating", apartmentHandler.GetApartmentRating)
		}

		// Reservation routes
		reservations := v1.Group("/reservations")
		{
			reservations.POST("", reservationHandler.CreateReservation)
			reservations.DELETE("/:customerId/:apartmentId/:startDate", reservationHandler.CancelReservation)
		}

		// Review routes
		reviews := v1.Group("/reviews")
		{
			reviews.POST("", reviewHandler.CreateReview)
			reviews.PUT("", reviewHandler.UpdateReview)
		}

		// Analytics routes
		analytics := v1.Group("/analytics")
		{
			analytics.GET("/top-customer", analyticsHandler.GetTopCustomer)
			analytics.GET("/reservations-per-owner", analyticsHandler.GetReservationsPerOwner)
			analytics.GET("/all-location-owners", analyticsHandler.GetAllLocationOwners)
			analytics.GET("/best-value", analyticsHandler.GetBestValueForMoney)
			analytics.GET("/profit/:year", analyticsHandler.GetProfitPerMonth)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
