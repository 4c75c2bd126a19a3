package routes

import (
	"time"

	"salonbook/handlers"
	"salonbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAvailabilityRoutes registers the public calendar endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/availability", hb.GetAvailabilityHandler)
}

// RegisterCartRoutes registers coupon redemption and checkout.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	cart := r.Group("/api/cart")
	{
		cart.POST("/redeem-coupon", hb.RedeemCouponHandler)
	}

	checkout := r.Group("/api/checkout")
	{
		checkout.Use(middleware.JWTAuthCustomerMiddleware())
		checkout.POST("/snap-token", hb.CreateSnapTokenHandler)
	}
}

// RegisterOpsRoutes registers health and metrics endpoints.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterOpsRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterCartRoutes(r, hb)
}
