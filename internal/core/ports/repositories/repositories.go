package repositories

// RepositoryProvider bundles every repository a storage backend must supply.
// Both backends (local embedded sqlite and the remote hosted service) fill
// this struct so they can be swapped at startup by configuration.
type RepositoryProvider struct {
	InventoryRepo   InventoryRepository
	ImageRepo       ImageRepository
	TransactionRepo TransactionRepository
	VocabularyRepo  VocabularyRepository
	ProfileRepo     ProfileRepository
}
