package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stocknest/stocknest_app/internal/core/ports/services"
	"github.com/stocknest/stocknest_app/internal/dto"
	"github.com/stocknest/stocknest_app/internal/middleware"
)

// itemHandler handles HTTP requests related to inventory items.
type itemHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newItemHandler(is portssvc.InventorySvcFacade) *itemHandler {
	return &itemHandler{inventoryService: is}
}

// registerItemRoutes registers routes related to inventory items.
func registerItemRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newItemHandler(inventoryService)

	boards := rg.Group("/boards/:boardID")
	{
		boards.GET("/items", h.listItems)
		boards.POST("/items", h.createItem)
	}

	items := rg.Group("/items")
	{
		items.GET("/:itemID", h.getItem)
		items.PATCH("/:itemID", h.updateItem)
		items.DELETE("/:itemID", h.deleteItem)
	}
}

func (h *itemHandler) listItems(c *gin.Context) {
	boardID := c.Param("boardID")

	items, err := h.inventoryService.GetItems(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err, "Failed to list items")
		return
	}

	c.JSON(http.StatusOK, dto.ToListItemResponse(items))
}

func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boardID := c.Param("boardID")

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), boardID, req)
	if err != nil {
		respondError(c, err, "Failed to create item")
		return
	}

	logger.Info("Item created", slog.String("item_id", item.ItemID), slog.String("board_id", boardID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *itemHandler) getItem(c *gin.Context) {
	item, err := h.inventoryService.GetItemByID(c.Request.Context(), c.Param("itemID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve item")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), itemID, req)
	if err != nil {
		respondError(c, err, "Failed to update item")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *itemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	if err := h.inventoryService.DeleteItem(c.Request.Context(), itemID); err != nil {
		respondError(c, err, "Failed to delete item")
		return
	}

	logger.Info("Item deleted", slog.String("item_id", itemID))
	c.Status(http.StatusNoContent)
}
