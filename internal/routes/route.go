package routes

import (
	"github.com/Azhar512/tassiecar/internal/container"
	"github.com/Azhar512/tassiecar/internal/handlers"
	"github.com/Azhar512/tassiecar/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.CorsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	// Last line of defense: a panic anywhere in a handler becomes one
	// generic 500 instead of taking the process down.
	r.Use(gin.Recovery())

	isProduction := c.Config.IsProduction()

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "tassiecar-api",
			})
		})

		// Public fleet and catalog routes.
		v1.GET("/vehicles", handlers.ListVehicles(c.VehicleService))
		v1.GET("/vehicles/events", handlers.VehicleEvents(c.VehicleService))
		v1.GET("/vehicles/:id", handlers.GetVehicle(c.VehicleService))
		v1.GET("/locations", handlers.ListLocations())
		v1.GET("/extras", handlers.ListExtras())
		v1.GET("/categories", handlers.ListCategories())

		// Direct booking create plus the customer lookup/cancel flow.
		v1.POST("/bookings", handlers.CreateBooking(c.BookingService))
		v1.POST("/bookings/lookup", handlers.LookupBooking(c.BookingService))
		v1.POST("/bookings/:id/cancel", handlers.CancelBooking(c.BookingService))

		// Multi-step booking wizard sessions.
		wizard := v1.Group("/booking/sessions")
		{
			wizard.POST("", handlers.CreateSession(c.WizardStore, c.BookingService))
			wizard.GET("/:id", handlers.GetSession(c.WizardStore, c.BookingService))
			wizard.PATCH("/:id", handlers.UpdateSession(c.WizardStore, c.BookingService))
			wizard.POST("/:id/next", handlers.AdvanceSession(c.WizardStore, c.BookingService))
			wizard.POST("/:id/back", handlers.BackSession(c.WizardStore, c.BookingService))
			wizard.POST("/:id/submit", handlers.SubmitSession(c.WizardStore, c.BookingService))
		}

		v1.POST("/contact", handlers.SendMessage(c.MessageService))

		v1.POST("/admin/login", handlers.Login(c.AuthService, isProduction))
		v1.POST("/admin/logout", handlers.Logout(c.AuthService, isProduction))
	}

	// Admin back-office: session required, then the admin-role gate.
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.AuthService, c.Logger, isProduction))
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/me", handlers.Me())

		admin.GET("/vehicles", handlers.ListVehicles(c.VehicleService))
		admin.POST("/vehicles", handlers.CreateVehicle(c.VehicleService))
		admin.PATCH("/vehicles/:id", handlers.UpdateVehicle(c.VehicleService))
		admin.DELETE("/vehicles/:id", handlers.DeleteVehicle(c.VehicleService))

		admin.GET("/bookings", handlers.ListBookings(c.BookingService))
		admin.POST("/bookings/:id/cancel", handlers.AdminCancelBooking(c.BookingService))

		admin.GET("/messages", handlers.ListMessages(c.MessageService))
		admin.POST("/messages/:id/reply", handlers.ReplyMessage(c.MessageService))
	}

	return r
}
