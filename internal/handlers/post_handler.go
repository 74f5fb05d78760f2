package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/inkwell-app/inkwell/backend/internal/models"
	"github.com/inkwell-app/inkwell/backend/internal/repositories"
	"github.com/inkwell-app/inkwell/backend/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository
	files             storage.ObjectStore
	sanitizer         *bluemonday.Policy
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, files storage.ObjectStore) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		commentRepository: commentRepo,
		files:             files,
		sanitizer:         bluemonday.UGCPolicy(),
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/inactive", h.GetInactivePosts)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post. Post content is untrusted rich text and
// is sanitized before it is stored. Engagement fields start at zero/empty.
func (h *PostHandler) CreatePost(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		Title:         req.Title,
		Content:       h.sanitizer.Sanitize(req.Content),
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
		UserID:        claims.UserID,
		UserName:      claims.Name,
	}
	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

// GetPosts retrieves active posts, or a single author's posts when the
// user_id query parameter is given. The result is an array, never null.
func (h *PostHandler) GetPosts(c echo.Context) error {
	skip, limit := pagination(c)

	if rawUserID := c.QueryParam("user_id"); rawUserID != "" {
		userID, err := strconv.ParseUint(rawUserID, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
		}
		posts, err := h.postRepository.GetPostsByUserID(c.Request().Context(), uint(userID), skip, limit)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, posts)
	}

	posts, err := h.postRepository.GetPostsByStatus(c.Request().Context(), models.PostStatusActive, skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// GetInactivePosts retrieves the authenticated user's draft/inactive posts.
func (h *PostHandler) GetInactivePosts(c echo.Context) error {
	skip, limit := pagination(c)
	posts, err := h.postRepository.GetPostsByStatus(c.Request().Context(), models.PostStatusInactive, skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// UpdatePost updates an existing post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	existingPost, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if existingPost == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if existingPost.UserID != claims.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this post")
	}

	if req.Title != "" {
		existingPost.Title = req.Title
	}
	if req.Content != "" {
		existingPost.Content = h.sanitizer.Sanitize(req.Content)
	}
	if req.FeaturedImage != "" {
		existingPost.FeaturedImage = req.FeaturedImage
	}
	if req.Status != "" {
		existingPost.Status = req.Status
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), postID, existingPost); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, existingPost)
}

// DeletePost deletes a post. Removing the post's comments and its stored
// image are sequenced follow-up steps, not part of one transaction: a
// failure after the post delete leaves orphans behind, which is logged and
// accepted rather than retried.
func (h *PostHandler) DeletePost(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("id")

	existingPost, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if existingPost == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if existingPost.UserID != claims.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.commentRepository.DeleteCommentsByPostID(context.Background(), postID); err != nil {
		log.Printf("Failed to delete comments for post %s: %v", postID, err)
	}
	if existingPost.FeaturedImage != "" {
		if err := h.files.Delete(context.Background(), existingPost.FeaturedImage); err != nil {
			log.Printf("Failed to delete image %s for post %s: %v", existingPost.FeaturedImage, postID, err)
		}
	}

	return c.NoContent(http.StatusNoContent)
}

func pagination(c echo.Context) (int64, int64) {
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit == 0 {
		limit = 10 // Default limit
	}
	return skip, limit
}
