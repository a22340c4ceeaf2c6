package sqlite

import (
	"database/sql"

	"github.com/stocknest/stocknest_app/internal/adapters/database/memory"
	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
)

// NewRepositoryProvider assembles the local storage backend: inventory,
// images, vocabularies and profiles in the embedded database, and the
// session-scoped in-memory transaction ledger seeded with demo data.
func NewRepositoryProvider(db *sql.DB) repositories.RepositoryProvider {
	return repositories.RepositoryProvider{
		InventoryRepo:   NewInventoryRepository(db),
		ImageRepo:       NewImageRepository(db),
		TransactionRepo: memory.NewTransactionRepository(memory.SeedTransactions()),
		VocabularyRepo:  NewVocabularyRepository(db),
		ProfileRepo:     NewProfileRepository(db),
	}
}
