package middleware

import (
	"net/http"
	"strings"

	"salonbook/models"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerKey is the gin context key holding the authenticated models.CustomerDetails.
const CustomerKey = "customer"

// JWTAuthCustomerMiddleware requires a valid customer bearer token and stores the customer in the context.
func JWTAuthCustomerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c)
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			unauthorized(c)
			return
		}

		claims, err := utils.ExtractCustomerFromToken(tokenString)
		if err != nil {
			zap.L().Debug("customer token rejected", zap.Error(err))
			unauthorized(c)
			return
		}

		c.Set(CustomerKey, models.CustomerDetails{
			ID:    claims.Subject,
			Name:  claims.Name,
			Email: claims.Email,
			Phone: claims.Phone,
		})
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
		"code":  "UNAUTHORIZED",
	})
}
