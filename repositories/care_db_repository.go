package repositories

// CareDbRepository carries all queries against the application database.
// Methods take an explicit Executor so callers decide whether they run on
// the pool or inside a transaction.
type CareDbRepository struct{}

func NewCareDbRepository() *CareDbRepository {
	return &CareDbRepository{}
}
