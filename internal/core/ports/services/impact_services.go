package services

import (
	"context"

	"github.com/arogyamitram/am_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ImpactSvcFacade exposes the impact accumulator and the analytics views.
type ImpactSvcFacade interface {
	// GetImpactStats returns the current running totals.
	GetImpactStats(ctx context.Context) (domain.ImpactStats, error)

	// RecordApproval folds one approval into the totals. Increments only;
	// there is no compensating path once an approval is recorded.
	RecordApproval(ctx context.Context, quantity int64, value decimal.Decimal) error

	// GetAnalytics recomputes the listing-store distributions (status,
	// category, monthly timeline) for the admin dashboard.
	GetAnalytics(ctx context.Context) (*domain.Analytics, error)
}
