package domain

import "github.com/shopspring/decimal"

// ImpactStats holds the running redistribution totals shown on the impact
// dashboard. The totals are seeded independently of the listing store and only
// ever incremented by approvals; they are not a derived view and are never
// reconciled against the listings.
type ImpactStats struct {
	TotalMedicines  int64           `json:"totalMedicines"` // Units redistributed
	TotalValue      decimal.Decimal `json:"totalValue"`
	WastePrevented  int64           `json:"wastePrevented"` // Grams of medical waste
	LivesImpacted   int64           `json:"livesImpacted"`
	CarbonFootprint int64           `json:"carbonFootprint"`
}

// MonthlyCount is one month's donation submissions, for the analytics timeline.
type MonthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

// Analytics aggregates listing-store distributions for the admin dashboard.
// Unlike ImpactStats these are recomputed from the store on every read.
type Analytics struct {
	StatusCounts   map[MedicineStatus]int64 `json:"statusCounts"`
	CategoryCounts map[string]int64         `json:"categoryCounts"`
	Timeline       []MonthlyCount           `json:"timeline"`
}
