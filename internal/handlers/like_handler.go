package handlers

import (
	"net/http"

	"github.com/inkwell-app/inkwell/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	postRepository repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{postRepository: postRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
	g.GET("/posts/liked", h.GetLikedPosts)
}

// ToggleLike inverts the caller's like on a post and returns the updated
// post, with the like count recomputed from the like-set in the same
// write. Toggling twice restores the original state.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	post, err := h.postRepository.ToggleLike(c.Request().Context(), c.Param("id"), claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

// GetLikedPosts lists the active posts whose like-set contains the caller.
func (h *LikeHandler) GetLikedPosts(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	posts, err := h.postRepository.GetPostsLikedBy(c.Request().Context(), claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}
