package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/arogyamitram/am_backend/internal/core/domain"
	portsrepo "github.com/arogyamitram/am_backend/internal/core/ports/repositories"
	portssvc "github.com/arogyamitram/am_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// impactService exposes the running impact totals and the recomputed
// analytics distributions.
type impactService struct {
	impactRepo   portsrepo.ImpactRepository
	medicineRepo portsrepo.MedicineReader
}

// NewImpactService creates a new ImpactService.
func NewImpactService(impactRepo portsrepo.ImpactRepository, medicineRepo portsrepo.MedicineReader) portssvc.ImpactSvcFacade {
	return &impactService{
		impactRepo:   impactRepo,
		medicineRepo: medicineRepo,
	}
}

var _ portssvc.ImpactSvcFacade = (*impactService)(nil)

// GetImpactStats returns the accumulator as-is. The totals start from seed
// values and take increments from approvals only, so they are not guaranteed
// to equal any sum over the listing table.
func (s *impactService) GetImpactStats(ctx context.Context) (domain.ImpactStats, error) {
	return s.impactRepo.GetImpactStats(ctx)
}

// RecordApproval folds one approval into the totals.
func (s *impactService) RecordApproval(ctx context.Context, quantity int64, value decimal.Decimal) error {
	if err := s.impactRepo.AddApproval(ctx, quantity, value); err != nil {
		return fmt.Errorf("recording approval in impact totals: %w", err)
	}
	return nil
}

// GetAnalytics recomputes status, category, and monthly-submission
// distributions from the full listing table.
func (s *impactService) GetAnalytics(ctx context.Context) (*domain.Analytics, error) {
	medicines, err := s.medicineRepo.FindMedicines(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading listings for analytics: %w", err)
	}

	analytics := &domain.Analytics{
		StatusCounts:   make(map[domain.MedicineStatus]int64),
		CategoryCounts: make(map[string]int64),
	}
	monthly := make(map[string]int64)
	for _, m := range medicines {
		analytics.StatusCounts[m.Status]++
		analytics.CategoryCounts[m.Category]++
		monthly[m.CreatedDate.Format("2006-01")]++
	}

	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		analytics.Timeline = append(analytics.Timeline, domain.MonthlyCount{
			Month: month,
			Count: monthly[month],
		})
	}
	return analytics, nil
}
