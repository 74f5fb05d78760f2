package handlers

import (
	"context"
	"net/http"

	"github.com/inkwell-app/inkwell/backend/internal/models"
	"github.com/inkwell-app/inkwell/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository // To verify posts and maintain comment counts
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsByPostID)
	g.DELETE("/posts/:post_id/comments/:id", h.DeleteComment)
}

// CreateComment appends a new comment to a post. The comment ID and
// timestamp are assigned at append time.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Verify post exists
	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	comment := &models.Comment{
		PostID:   postID,
		UserID:   claims.UserID,
		UserName: claims.Name,
		Content:  req.Content,
	}
	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Increment comments count in the post
	go h.postRepository.IncrementCommentsCount(context.Background(), postID)

	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPostID retrieves all comments for a specific post
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	postID := c.Param("post_id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comments)
}

// DeleteComment removes a comment authored by the caller. When the
// (comment, author) pair does not match, nothing is deleted and the
// request still succeeds: a silent no-op, not an error.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")
	commentID := c.Param("id")

	deleted, err := h.commentRepository.DeleteComment(c.Request().Context(), postID, commentID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if deleted {
		// Decrement comments count in the post
		go h.postRepository.DecrementCommentsCount(context.Background(), postID)
	}

	return c.NoContent(http.StatusNoContent)
}
