package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stocknest/stocknest_app/internal/core/ports/services"
	"github.com/stocknest/stocknest_app/internal/utils/export"
)

// exportHandler streams board data as downloadable CSV files.
type exportHandler struct {
	inventoryService   portssvc.InventoryReaderSvc
	transactionService portssvc.TransactionSvcFacade
}

func newExportHandler(is portssvc.InventoryReaderSvc, ts portssvc.TransactionSvcFacade) *exportHandler {
	return &exportHandler{inventoryService: is, transactionService: ts}
}

// registerExportRoutes registers the CSV export routes.
func registerExportRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventoryReaderSvc, transactionService portssvc.TransactionSvcFacade) {
	h := newExportHandler(inventoryService, transactionService)

	exports := rg.Group("/boards/:boardID/export")
	{
		exports.GET("/items.csv", h.exportItems)
		exports.GET("/transactions.csv", h.exportTransactions)
	}
}

func (h *exportHandler) exportItems(c *gin.Context) {
	boardID := c.Param("boardID")

	items, err := h.inventoryService.GetItems(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err, "Failed to export items")
		return
	}

	data, err := export.ItemsCSV(items)
	if err != nil {
		respondError(c, err, "Failed to render items CSV")
		return
	}

	sendCSV(c, fmt.Sprintf("items-%s.csv", boardID), data)
}

func (h *exportHandler) exportTransactions(c *gin.Context) {
	boardID := c.Param("boardID")

	txns, err := h.transactionService.GetTransactions(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err, "Failed to export transactions")
		return
	}

	data, err := export.TransactionsCSV(txns)
	if err != nil {
		respondError(c, err, "Failed to render transactions CSV")
		return
	}

	sendCSV(c, fmt.Sprintf("transactions-%s.csv", boardID), data)
}

func sendCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
