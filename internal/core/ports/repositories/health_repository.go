package repositories

import "context"

// HealthRepository reports storage reachability and table sizes for operators.
type HealthRepository interface {
	Ping(ctx context.Context) error
	// TableCounts returns row counts keyed by table name.
	TableCounts(ctx context.Context) (map[string]int64, error)
}
