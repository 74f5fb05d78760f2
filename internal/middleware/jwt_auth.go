package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/inkwell-app/inkwell/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware checks for a valid JWT and stores the user claims in
// the request context. The secret is injected rather than read from the
// environment per request.
func JWTAuthMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseBearer(c, jwtSecret)
			if err != nil {
				return err
			}
			c.Set("user", claims)
			return next(c)
		}
	}
}

// OptionalJWTAuth parses the bearer token when one is present but lets the
// request through either way. Used by the current-session endpoint, where
// "no session" is an expected empty result rather than an auth failure.
func OptionalJWTAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, err := parseBearer(c, jwtSecret); err == nil {
				c.Set("user", claims)
			}
			return next(c)
		}
	}
}

func parseBearer(c echo.Context, jwtSecret string) (*models.JwtCustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
	}

	// Expecting "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
	}

	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token signature")
		}
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	if !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return claims, nil
}
