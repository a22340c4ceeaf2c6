package dto

import "github.com/shopspring/decimal"

// BoardSummaryResponse aggregates the dashboard figures for one board.
type BoardSummaryResponse struct {
	BoardID         string          `json:"boardID"`
	IncomeTotal     decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal    decimal.Decimal `json:"expenseTotal"`
	Net             decimal.Decimal `json:"net"`
	InventoryValue  decimal.Decimal `json:"inventoryValue"`  // sum(price * quantity)
	InventoryCost   decimal.Decimal `json:"inventoryCost"`   // sum(cost_price * quantity)
	ItemCount       int             `json:"itemCount"`
	LowStockCount   int             `json:"lowStockCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
}
