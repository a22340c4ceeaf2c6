package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stocknest/stocknest_app/internal/adapters/cache"
	"github.com/stocknest/stocknest_app/internal/core/domain"
	portsrepo "github.com/stocknest/stocknest_app/internal/core/ports/repositories"
	portssvc "github.com/stocknest/stocknest_app/internal/core/ports/services"
	"github.com/stocknest/stocknest_app/internal/dto"
)

// ReportingService computes dashboard aggregates over the ledger and the
// inventory. Summaries go through an optional cache with a short TTL; the
// cache is purely an optimization and every miss recomputes from the stores.
type ReportingService struct {
	BaseService
	txnRepo  portsrepo.TransactionReader
	itemRepo portsrepo.InventoryReader
	cache    cache.SummaryCache
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

func NewReportingService(txnRepo portsrepo.TransactionReader, itemRepo portsrepo.InventoryReader, summaryCache cache.SummaryCache) *ReportingService {
	if summaryCache == nil {
		summaryCache = cache.NoopCache{}
	}
	return &ReportingService{txnRepo: txnRepo, itemRepo: itemRepo, cache: summaryCache}
}

func (s *ReportingService) GetBoardSummary(ctx context.Context, boardID string) (*dto.BoardSummaryResponse, error) {
	var cached dto.BoardSummaryResponse
	if s.cache.GetSummary(ctx, boardID, &cached) {
		return &cached, nil
	}

	txns, err := s.txnRepo.ListTransactions(ctx, boardID)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListItems(ctx, boardID)
	if err != nil {
		return nil, err
	}

	summary := dto.BoardSummaryResponse{BoardID: boardID}
	for _, txn := range txns {
		switch txn.Type {
		case domain.Income:
			summary.IncomeTotal = summary.IncomeTotal.Add(txn.Amount)
		case domain.Expense:
			summary.ExpenseTotal = summary.ExpenseTotal.Add(txn.Amount)
		}
	}
	summary.Net = summary.IncomeTotal.Sub(summary.ExpenseTotal)

	for _, item := range items {
		qty := decimal.NewFromInt(item.Quantity)
		summary.InventoryValue = summary.InventoryValue.Add(item.Price.Mul(qty))
		summary.InventoryCost = summary.InventoryCost.Add(item.CostPrice.Mul(qty))
		summary.ItemCount++
		switch item.Status() {
		case domain.StatusLowStock:
			summary.LowStockCount++
		case domain.StatusOutOfStock:
			summary.OutOfStockCount++
		}
	}

	s.cache.SetSummary(ctx, boardID, summary)
	return &summary, nil
}
