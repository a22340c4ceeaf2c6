// Package export renders record lists as CSV download payloads: a header row
// plus one row per record, every field quoted.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/stocknest/stocknest_app/internal/core/domain"
)

const dateLayout = "2006-01-02"

// ItemsCSV renders inventory items as CSV.
func ItemsCSV(items []domain.InventoryItem) ([]byte, error) {
	records := make([][]string, 0, len(items)+1)
	records = append(records, []string{
		"id", "name", "description", "category", "label", "paid_to",
		"price", "cost_price", "quantity", "status", "created_at",
	})
	for _, item := range items {
		records = append(records, []string{
			item.ItemID,
			item.Name,
			item.Description,
			item.Category,
			item.Label,
			item.PaidTo,
			item.Price.String(),
			item.CostPrice.String(),
			fmt.Sprintf("%d", item.Quantity),
			string(item.Status()),
			item.CreatedAt.Format(time.RFC3339),
		})
	}
	return render(records)
}

// TransactionsCSV renders ledger entries as CSV. Item references are folded
// into a single "item_id:quantity;..." column.
func TransactionsCSV(txns []domain.Transaction) ([]byte, error) {
	records := make([][]string, 0, len(txns)+1)
	records = append(records, []string{
		"id", "type", "amount", "date", "payment_mode", "reference", "notes", "items", "created_at",
	})
	for _, txn := range txns {
		records = append(records, []string{
			txn.TransactionID,
			string(txn.Type),
			txn.Amount.String(),
			txn.Date.Format(dateLayout),
			txn.PaymentMode,
			txn.Reference,
			txn.Notes,
			foldItems(txn.Items),
			txn.CreatedAt.Format(time.RFC3339),
		})
	}
	return render(records)
}

func foldItems(items []domain.TransactionItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s:%d", it.ItemID, it.Quantity)
	}
	return strings.Join(parts, ";")
}

// render writes records with every field quoted, matching the export format
// the dashboard's spreadsheet consumers expect.
func render(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	for _, record := range records {
		for i, field := range record {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
			buf.WriteByte('"')
		}
		buf.WriteString("\r\n")
	}
	return buf.Bytes(), nil
}
