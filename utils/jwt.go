package utils

import (
	"errors"
	"os"
	"time"

	"salonbook/config"

	"github.com/golang-jwt/jwt"
)

// CustomerClaims is the identity carried by a customer access token.
type CustomerClaims struct {
	Subject string
	Name    string
	Email   string
	Phone   string
}

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token for the given customer.
// The token expires after the specified duration.
func GenerateToken(claims CustomerClaims, duration time.Duration) (string, error) {
	if len(secretKey()) == 0 {
		return "", errors.New("jwt secret is not configured")
	}
	mc := jwt.MapClaims{
		"sub":   claims.Subject,
		"name":  claims.Name,
		"email": claims.Email,
		"phone": claims.Phone,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractCustomerFromToken validates the token and returns the customer it was issued for.
func ExtractCustomerFromToken(tokenString string) (*CustomerClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	out := &CustomerClaims{Subject: sub}
	out.Name, _ = claims["name"].(string)
	out.Email, _ = claims["email"].(string)
	out.Phone, _ = claims["phone"].(string)
	return out, nil
}
