package repositories

import (
	"context"

	"github.com/stocknest/stocknest_app/internal/core/domain"
)

// VocabularyRepository manages the per-board open string sets backing
// dropdown options (categories, labels, paid-to). Both mutations are
// idempotent set-membership operations: adding a present value and removing
// an absent value are no-ops.
type VocabularyRepository interface {
	// ListValues returns the values of one vocabulary in insertion order.
	ListValues(ctx context.Context, boardID string, kind domain.VocabularyKind) ([]string, error)

	// AddValue appends a value if not already present.
	AddValue(ctx context.Context, boardID string, kind domain.VocabularyKind, value string) error

	// RemoveValue deletes a value if present. Items already carrying the
	// value are not touched.
	RemoveValue(ctx context.Context, boardID string, kind domain.VocabularyKind, value string) error
}
