package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stocknest/stocknest_app/internal/core/domain"
	portssvc "github.com/stocknest/stocknest_app/internal/core/ports/services"
	"github.com/stocknest/stocknest_app/internal/dto"
	"github.com/stocknest/stocknest_app/internal/middleware"
)

// vocabularyHandler handles the per-board dropdown vocabularies.
type vocabularyHandler struct {
	vocabService portssvc.VocabularySvc
}

func newVocabularyHandler(vs portssvc.VocabularySvc) *vocabularyHandler {
	return &vocabularyHandler{vocabService: vs}
}

// registerVocabularyRoutes registers routes related to vocabularies.
func registerVocabularyRoutes(rg *gin.RouterGroup, vocabService portssvc.VocabularySvc) {
	h := newVocabularyHandler(vocabService)

	vocab := rg.Group("/boards/:boardID/vocabularies/:kind")
	{
		vocab.GET("", h.listValues)
		vocab.POST("", h.addValue)
		vocab.DELETE("/:value", h.removeValue)
	}
}

func (h *vocabularyHandler) listValues(c *gin.Context) {
	boardID := c.Param("boardID")
	kind := domain.VocabularyKind(c.Param("kind"))

	values, err := h.vocabService.GetVocabulary(c.Request.Context(), boardID, kind)
	if err != nil {
		respondError(c, err, "Failed to list vocabulary")
		return
	}

	c.JSON(http.StatusOK, dto.VocabularyResponse{
		BoardID: boardID,
		Kind:    kind,
		Values:  values,
	})
}

func (h *vocabularyHandler) addValue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boardID := c.Param("boardID")
	kind := domain.VocabularyKind(c.Param("kind"))

	var req dto.VocabularyValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddVocabularyValue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.vocabService.AddVocabularyValue(c.Request.Context(), boardID, kind, req.Value); err != nil {
		respondError(c, err, "Failed to add vocabulary value")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *vocabularyHandler) removeValue(c *gin.Context) {
	boardID := c.Param("boardID")
	kind := domain.VocabularyKind(c.Param("kind"))
	value := c.Param("value")

	if err := h.vocabService.RemoveVocabularyValue(c.Request.Context(), boardID, kind, value); err != nil {
		respondError(c, err, "Failed to remove vocabulary value")
		return
	}

	c.Status(http.StatusNoContent)
}
