package dto

import (
	"github.com/arogyamitram/am_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ImpactResponse is the impact dashboard snapshot: the running totals plus the
// figures the dashboard derives from them.
type ImpactResponse struct {
	TotalMedicines         int64           `json:"totalMedicines"`
	TotalValue             decimal.Decimal `json:"totalValue"`
	WastePrevented         int64           `json:"wastePrevented"`
	LivesImpacted          int64           `json:"livesImpacted"`
	CarbonFootprint        int64           `json:"carbonFootprint"`
	PrescriptionsFulfilled int64           `json:"prescriptionsFulfilled"`
	StudentSavings         decimal.Decimal `json:"studentSavings"`
}

// ToImpactResponse maps the running totals and derives the presentation
// figures the same way the dashboard always has: half the medicines count as
// fulfilled prescriptions, 30% of the value as student savings.
func ToImpactResponse(s domain.ImpactStats) ImpactResponse {
	return ImpactResponse{
		TotalMedicines:         s.TotalMedicines,
		TotalValue:             s.TotalValue,
		WastePrevented:         s.WastePrevented,
		LivesImpacted:          s.LivesImpacted,
		CarbonFootprint:        s.CarbonFootprint,
		PrescriptionsFulfilled: s.TotalMedicines / 2,
		StudentSavings:         s.TotalValue.Mul(decimal.NewFromFloat(0.3)).Round(0),
	}
}

// AnalyticsResponse carries the admin analytics distributions.
type AnalyticsResponse struct {
	StatusCounts   map[domain.MedicineStatus]int64 `json:"statusCounts"`
	CategoryCounts map[string]int64                `json:"categoryCounts"`
	Timeline       []domain.MonthlyCount           `json:"timeline"`
}

// ToAnalyticsResponse maps the domain analytics to the response DTO.
func ToAnalyticsResponse(a *domain.Analytics) AnalyticsResponse {
	return AnalyticsResponse{
		StatusCounts:   a.StatusCounts,
		CategoryCounts: a.CategoryCounts,
		Timeline:       a.Timeline,
	}
}
