package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// countedTables are reported by TableCounts, in display order.
var countedTables = []string{
	"users", "currencies", "exchange_rates", "counterparties", "balance_sheets", "balance_sheet_items",
	"members", "documents", "comments", "ratings", "due_diligences", "notifications",
}

type PgxHealthRepository struct {
	BaseRepository
}

func newPgxHealthRepository(pool *pgxpool.Pool) portsrepo.HealthRepository {
	return &PgxHealthRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.HealthRepository = (*PgxHealthRepository)(nil)

func (r *PgxHealthRepository) Ping(ctx context.Context) error {
	return r.Pool.Ping(ctx)
}

func (r *PgxHealthRepository) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(countedTables))
	for _, table := range countedTables {
		var n int64
		// table names come from the fixed list above
		if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
