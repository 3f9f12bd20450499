package api

import (
	"log"
	stdhttp "net/http"

	intconfig "github.com/Thakshinss/bds-nagercoil-ride/internal/config"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/email"
	h "github.com/Thakshinss/bds-nagercoil-ride/internal/http/handlers"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	notifier := email.NewClient(email.Config{
		Endpoint:   env.EmailJSEndpoint,
		ServiceID:  env.EmailJSServiceID,
		TemplateID: env.EmailJSTemplateID,
		PublicKey:  env.EmailJSPublicKey,
		ToEmail:    env.NotifyEmailTo,
	})
	if notifier.Configured() {
		h.SetBookingNotifier(notifier)
	} else {
		log.Println("emailjs credentials missing, booking notifications disabled")
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Public site reads + booking intake
		api.GET("/fares", h.GetFares)
		api.GET("/tour-packages", h.GetTourPackages)
		api.GET("/cars", h.GetActiveCars)
		api.GET("/banner", h.GetActiveBanner)
		api.POST("/bookings", h.CreateBooking)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Admin panel API behind the obfuscated path the site has always used
		admin := api.Group("/admin_b_d_s")
		admin.Use(middleware.AuthRequired([]byte(env.JWTSecret)), middleware.RequireRoles("owner", "editor"))
		{
			fares := admin.Group("/fares")
			fares.GET("", h.AdminGetFares)
			fares.POST("", h.CreateFare)
			fares.PUT("/:id", h.UpdateFare)
			fares.DELETE("/:id", h.DeleteFare)

			packages := admin.Group("/tour-packages")
			packages.GET("", h.AdminGetTourPackages)
			packages.POST("", h.CreateTourPackage)
			packages.PUT("/:id", h.UpdateTourPackage)
			packages.DELETE("/:id", h.DeleteTourPackage)

			cars := admin.Group("/cars")
			cars.GET("", h.AdminGetCars)
			cars.POST("", h.CreateCar)
			cars.PUT("/:id", h.UpdateCar)
			cars.DELETE("/:id", h.DeleteCar)

			bookings := admin.Group("/bookings")
			bookings.GET("", h.AdminGetBookings)
			bookings.PUT("/:id/status", h.UpdateBookingStatus)
			bookings.DELETE("/:id", h.DeleteBooking)
			bookings.GET("/:id/voucher", h.GetBookingVoucherPDF)

			banner := admin.Group("/banner")
			banner.GET("", h.AdminGetBanner)
			banner.POST("", h.CreateBanner)
			banner.PATCH("/:id", h.UpdateBanner)
			banner.DELETE("/:id", h.DeleteBanner)
		}
	}

	h.SetRouter(r)
	return r
}
