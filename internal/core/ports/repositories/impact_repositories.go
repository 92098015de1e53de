package repositories

import (
	"context"

	"github.com/arogyamitram/am_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ImpactRepository holds the running impact totals. The accumulator is seeded
// at startup and only ever incremented; there is no decrement or reset.
type ImpactRepository interface {
	// GetImpactStats returns the current totals.
	GetImpactStats(ctx context.Context) (domain.ImpactStats, error)

	// AddApproval adds one approved listing's quantity and total value to the
	// running totals.
	AddApproval(ctx context.Context, quantity int64, value decimal.Decimal) error
}
