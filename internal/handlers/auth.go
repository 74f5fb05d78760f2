package handlers

import (
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/inkwell-app/inkwell/backend/internal/models"
	"github.com/inkwell-app/inkwell/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	firebaseAuth   *auth.Client // nil when Firebase login is not configured
	jwtSecret      string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, firebaseAuthClient *auth.Client, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		firebaseAuth:   firebaseAuthClient,
		jwtSecret:      jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.SignUp)
	g.POST("/signin", h.SignIn)
	g.POST("/firebase-login", h.FirebaseLogin)
	g.POST("/logout", h.Logout)
	g.GET("/me", h.Me)
}

// authResponse is returned by every operation that establishes a session,
// so callers can refresh their cached user record without a second trip.
type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// SignUp creates a local account with email and password
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req models.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Check if user with this email already exists
	if _, err := h.userRepository.GetUserByEmail(req.Email); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "User with this email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token after signup")
	}

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// SignIn authenticates a local account with email and password
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// FirebaseLoginRequest defines the request body for Firebase login
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// FirebaseLogin verifies a Firebase ID token, upserts the matching user
// and issues a local JWT for it.
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	if h.firebaseAuth == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Firebase login is not configured")
	}

	var req FirebaseLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.firebaseAuth.VerifyIDToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)

	user, err := h.userRepository.GetUserByFirebaseUID(token.UID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
		}
		// Not seen before; link by email if the account exists, otherwise
		// create a fresh one.
		user, err = h.userRepository.GetUserByEmail(email)
		switch {
		case err == nil:
			user.FirebaseUID = token.UID
			if err := h.userRepository.UpdateUser(user); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update user with Firebase UID")
			}
		case err == gorm.ErrRecordNotFound:
			user = &models.User{
				Name:        name,
				Email:       email,
				FirebaseUID: token.UID,
			}
			if err := h.userRepository.CreateUser(user); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
			}
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
		}
	}

	localToken, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, authResponse{Token: localToken, User: user})
}

// Me reports the current session's user, or null when there is none. The
// no-session case is an expected empty result and never an error; only
// store failures surface as errors.
func (h *AuthHandler) Me(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return c.JSON(http.StatusOK, echo.Map{"user": nil})
	}

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusOK, echo.Map{"user": nil})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// Logout is a no-op on the server: sessions are bearer tokens and the
// client discards its own copy. The endpoint exists so clients have one
// call that ends a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
