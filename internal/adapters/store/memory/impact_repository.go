package memory

import (
	"context"
	"sync"

	"github.com/arogyamitram/am_backend/internal/core/domain"
	portsrepo "github.com/arogyamitram/am_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ImpactRepository is the running impact accumulator. It starts from seed
// totals that are independent of the listing table and is only ever
// incremented; the two are deliberately never reconciled.
type ImpactRepository struct {
	mu    sync.RWMutex
	stats domain.ImpactStats
}

// NewImpactRepository creates an accumulator starting at the given totals.
func NewImpactRepository(seed domain.ImpactStats) *ImpactRepository {
	return &ImpactRepository{stats: seed}
}

var _ portsrepo.ImpactRepository = (*ImpactRepository)(nil)

// GetImpactStats returns the current totals.
func (r *ImpactRepository) GetImpactStats(_ context.Context) (domain.ImpactStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats, nil
}

// AddApproval folds one approved listing into the totals.
func (r *ImpactRepository) AddApproval(_ context.Context, quantity int64, value decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.TotalMedicines += quantity
	r.stats.TotalValue = r.stats.TotalValue.Add(value)
	return nil
}
