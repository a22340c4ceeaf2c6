package handlers

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stocknest/stocknest_app/internal/core/ports/services"
	"github.com/stocknest/stocknest_app/internal/dto"
	"github.com/stocknest/stocknest_app/internal/middleware"
)

// maxUploadBytes caps the accepted multipart payload size.
const maxUploadBytes = 20 << 20

// imageHandler handles media uploads and the image side of the cascade.
type imageHandler struct {
	imageService     portssvc.ImageSvcFacade
	inventoryService portssvc.InventoryReaderSvc
}

func newImageHandler(is portssvc.ImageSvcFacade, inv portssvc.InventoryReaderSvc) *imageHandler {
	return &imageHandler{imageService: is, inventoryService: inv}
}

// registerImageRoutes registers routes related to images.
func registerImageRoutes(rg *gin.RouterGroup, imageService portssvc.ImageSvcFacade, inventoryService portssvc.InventoryReaderSvc) {
	h := newImageHandler(imageService, inventoryService)

	boards := rg.Group("/boards/:boardID")
	{
		boards.GET("/images", h.listImages)
		boards.POST("/images", h.uploadImage)
	}

	images := rg.Group("/images")
	{
		images.PUT("/:imageID", h.replaceImage)
		images.DELETE("/:imageID", h.deleteImage)
		images.GET("/:imageID/items", h.listReferencingItems)
	}
}

func (h *imageHandler) listImages(c *gin.Context) {
	images, err := h.imageService.GetImages(c.Request.Context(), c.Param("boardID"))
	if err != nil {
		respondError(c, err, "Failed to list images")
		return
	}

	c.JSON(http.StatusOK, dto.ToListImageResponse(images))
}

func (h *imageHandler) uploadImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boardID := c.Param("boardID")

	fileHeader, err := h.formFile(c)
	if err != nil {
		logger.Warn("Missing or invalid upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 'file' form field with the image is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err, "Failed to read upload")
		return
	}
	defer file.Close()

	img, err := h.imageService.AddImage(c.Request.Context(), boardID, fileHeader.Filename, file)
	if err != nil {
		respondError(c, err, "Failed to store image")
		return
	}

	logger.Info("Image uploaded", slog.String("image_id", img.ImageID), slog.String("board_id", boardID))
	c.JSON(http.StatusCreated, dto.ToImageResponse(img))
}

func (h *imageHandler) replaceImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	imageID := c.Param("imageID")

	fileHeader, err := h.formFile(c)
	if err != nil {
		logger.Warn("Missing or invalid upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 'file' form field with the image is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err, "Failed to read upload")
		return
	}
	defer file.Close()

	img, err := h.imageService.ReplaceImage(c.Request.Context(), imageID, fileHeader.Filename, file)
	if err != nil {
		respondError(c, err, "Failed to replace image")
		return
	}

	logger.Info("Image replaced", slog.String("image_id", imageID))
	c.JSON(http.StatusOK, dto.ToImageResponse(img))
}

func (h *imageHandler) deleteImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	imageID := c.Param("imageID")

	if err := h.imageService.DeleteImage(c.Request.Context(), imageID); err != nil {
		respondError(c, err, "Failed to delete image")
		return
	}

	logger.Info("Image deleted", slog.String("image_id", imageID))
	c.Status(http.StatusNoContent)
}

// listReferencingItems answers which items still use an image, backed by the
// in-memory reverse index.
func (h *imageHandler) listReferencingItems(c *gin.Context) {
	items, err := h.inventoryService.GetItemsByImageID(c.Request.Context(), c.Param("imageID"))
	if err != nil {
		respondError(c, err, "Failed to list referencing items")
		return
	}

	c.JSON(http.StatusOK, dto.ToListItemResponse(items))
}

func (h *imageHandler) formFile(c *gin.Context) (*multipart.FileHeader, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	return c.FormFile("file")
}
