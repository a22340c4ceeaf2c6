package services

import (
	"context"

	"github.com/stocknest/stocknest_app/internal/dto"
)

// ReportingSvcFacade computes aggregate dashboard figures.
type ReportingSvcFacade interface {
	// GetBoardSummary aggregates ledger totals and inventory valuation for a board.
	GetBoardSummary(ctx context.Context, boardID string) (*dto.BoardSummaryResponse, error)
}
