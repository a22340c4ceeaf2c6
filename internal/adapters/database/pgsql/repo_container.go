package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocknest/stocknest_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository of the remote backend onto a
// shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) repositories.RepositoryProvider {
	return repositories.RepositoryProvider{
		InventoryRepo:   NewInventoryRepository(pool),
		ImageRepo:       NewImageRepository(pool),
		TransactionRepo: NewTransactionRepository(pool),
		VocabularyRepo:  NewVocabularyRepository(pool),
		ProfileRepo:     NewProfileRepository(pool),
	}
}
