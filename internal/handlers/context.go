package handlers

import (
	"github.com/inkwell-app/inkwell/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// currentUser returns the JWT claims set by the auth middleware, or nil
// when the request carries no valid session.
func currentUser(c echo.Context) *models.JwtCustomClaims {
	claims, _ := c.Get("user").(*models.JwtCustomClaims)
	return claims
}
