package handlers

import (
	"net/http"

	"github.com/inkwell-app/inkwell/backend/internal/models"
	"github.com/inkwell-app/inkwell/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// Toggle outcomes reported to the caller.
const (
	BookmarkAdded   = "added"
	BookmarkRemoved = "removed"
)

// BookmarkHandler handles bookmark HTTP requests
type BookmarkHandler struct {
	bookmarkRepository repositories.BookmarkRepository
	postRepository     repositories.PostRepository
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(bookmarkRepo repositories.BookmarkRepository, postRepo repositories.PostRepository) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkRepository: bookmarkRepo,
		postRepository:     postRepo,
	}
}

// RegisterBookmarkRoutes registers bookmark routes
func (h *BookmarkHandler) RegisterBookmarkRoutes(g *echo.Group) {
	g.POST("/posts/:id/bookmark", h.ToggleBookmark)
	g.GET("/bookmarks", h.GetBookmarks)
	g.GET("/bookmarks/posts", h.GetBookmarkedPosts)
}

// ToggleBookmark creates the (user, post) link record if absent, deletes
// it if present, and reports which happened. The unique index on the pair
// means a concurrent duplicate toggle fails the insert instead of writing
// a second row.
func (h *BookmarkHandler) ToggleBookmark(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("id")

	exists, err := h.bookmarkRepository.Exists(claims.UserID, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if exists {
		if err := h.bookmarkRepository.Delete(claims.UserID, postID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, echo.Map{"status": BookmarkRemoved})
	}

	// Verify post exists before linking to it
	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	bookmark := &models.Bookmark{
		UserID: claims.UserID,
		PostID: postID,
	}
	if err := h.bookmarkRepository.Create(bookmark); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"status": BookmarkAdded})
}

// GetBookmarks lists the caller's bookmark link records.
func (h *BookmarkHandler) GetBookmarks(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	bookmarks, err := h.bookmarkRepository.ListByUser(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bookmarks)
}

// GetBookmarkedPosts resolves the caller's bookmarks to full posts with a
// single batched query. An empty bookmark list short-circuits to an empty
// array; the batch query is never issued for an empty id set.
func (h *BookmarkHandler) GetBookmarkedPosts(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	bookmarks, err := h.bookmarkRepository.ListByUser(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(bookmarks) == 0 {
		return c.JSON(http.StatusOK, []models.Post{})
	}

	postIDs := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		postIDs = append(postIDs, b.PostID)
	}

	posts, err := h.postRepository.GetPostsByIDs(c.Request().Context(), postIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}
