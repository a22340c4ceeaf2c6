package dto

import "github.com/stocknest/stocknest_app/internal/core/domain"

// VocabularyValueRequest carries a single value to add or remove.
type VocabularyValueRequest struct {
	Value string `json:"value" binding:"required"`
}

// VocabularyResponse returns one board vocabulary in insertion order.
type VocabularyResponse struct {
	BoardID string                `json:"boardID"`
	Kind    domain.VocabularyKind `json:"kind"`
	Values  []string              `json:"values"`
}
