package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service layer.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	RecordRepo  RecordRepository
}
