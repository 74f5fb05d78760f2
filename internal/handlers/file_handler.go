package handlers

import (
	"net/http"

	"github.com/inkwell-app/inkwell/backend/internal/storage"
	"github.com/labstack/echo/v4"
)

// FileHandler handles blob storage HTTP requests
type FileHandler struct {
	files storage.ObjectStore
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(files storage.ObjectStore) *FileHandler {
	return &FileHandler{files: files}
}

// RegisterFileRoutes registers file storage routes
func (h *FileHandler) RegisterFileRoutes(g *echo.Group) {
	g.POST("/files", h.UploadFile)
	g.DELETE("/files/:id", h.DeleteFile)
	g.GET("/files/:id/preview", h.GetFilePreview)
}

// UploadFile stores a multipart upload and returns its generated file ID
// together with a ready-to-embed preview URL.
func (h *FileHandler) UploadFile(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file upload")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot read file upload")
	}
	defer src.Close()

	fileID, err := h.files.Upload(c.Request().Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"id":  fileID,
		"url": h.files.PreviewURL(fileID),
	})
}

// DeleteFile removes a stored blob.
func (h *FileHandler) DeleteFile(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.files.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetFilePreview returns the public URL for a stored file. The URL is
// assembled locally; no storage round trip happens here.
func (h *FileHandler) GetFilePreview(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"url": h.files.PreviewURL(c.Param("id")),
	})
}
