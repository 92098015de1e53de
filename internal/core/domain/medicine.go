package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MedicineStatus indicates where a listing is in the approval workflow.
type MedicineStatus string

const (
	StatusPending  MedicineStatus = "pending"
	StatusApproved MedicineStatus = "approved"
	StatusRejected MedicineStatus = "rejected"
)

// FilterAll is the sentinel filter value meaning "do not restrict".
const FilterAll = "All"

// Categories is the suggested set of medicine categories. Listings may carry
// other values; the set is advisory, not enforced.
var Categories = []string{
	"Pain Relief",
	"Antibiotic",
	"Chronic Disease",
	"Cardiovascular",
	"Vitamins",
	"Other",
}

// Locations is the fixed set of campus drop-off locations.
var Locations = []string{
	"College Medical Room",
	"Hostel A",
	"Hostel B",
	"Faculty Block",
}

// IsValidLocation reports whether loc is one of the campus locations.
func IsValidLocation(loc string) bool {
	for _, l := range Locations {
		if l == loc {
			return true
		}
	}
	return false
}

// Medicine represents a single donated-medicine listing moving through the
// approval workflow.
type Medicine struct {
	ID                   int64           `json:"id"` // Monotonically assigned by the store
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Category             string          `json:"category"`
	Quantity             int64           `json:"quantity"`  // Tablets/items, always positive
	UnitValue            decimal.Decimal `json:"unitValue"` // Currency value per unit, always positive
	Expiry               time.Time       `json:"expiry"`
	Location             string          `json:"location"`
	RequiresPrescription bool            `json:"requiresPrescription"`
	DonorName            string          `json:"donorName"`
	DonorContact         string          `json:"donorContact"` // Phone-like string, WhatsApp reachable
	ImageRef             string          `json:"imageRef"`     // URL or inline data URL; placeholder when absent
	Status               MedicineStatus  `json:"status"`
	CreatedDate          time.Time       `json:"createdDate"`
}

// TotalValue is the listing's full redistribution value (quantity * unit value).
func (m Medicine) TotalValue() decimal.Decimal {
	return m.UnitValue.Mul(decimal.NewFromInt(m.Quantity))
}

// MedicineFilter narrows the approved-listing view. Zero values and FilterAll
// are no-ops; set fields combine with logical AND.
type MedicineFilter struct {
	Search   string // Case-insensitive substring match on name
	Category string
	Location string
}
