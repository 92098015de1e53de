package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/arogyamitram/am_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SeedUsers returns the static demo accounts: one administrator, two donors,
// one recipient.
func SeedUsers() []domain.User {
	return []domain.User{
		{Username: "admin", Password: "admin123", Name: "Admin", Phone: "911234567890", Role: domain.RoleAdmin, Org: "College Medical Center"},
		{Username: "donor1", Password: "donor123", Name: "Rahul Sharma", Phone: "919876543210", Role: domain.RoleDonor, Org: "Student"},
		{Username: "donor2", Password: "donor123", Name: "Priya Patel", Phone: "919876543211", Role: domain.RoleDonor, Org: "Faculty"},
		{Username: "recipient1", Password: "recipient123", Name: "Medical Staff", Phone: "919876543213", Role: domain.RoleRecipient, Org: "College Health Center"},
	}
}

// SeedImpactStats returns the starting impact totals. These do not equal any
// sum over the seed listings; the dashboard totals predate the listing table.
func SeedImpactStats() domain.ImpactStats {
	return domain.ImpactStats{
		TotalMedicines:  180,
		TotalValue:      decimal.NewFromInt(1200),
		WastePrevented:  1500,
		LivesImpacted:   250,
		CarbonFootprint: 300,
	}
}

// SeedMedicines loads the demo listings into the repository in their original
// order, so they receive ids 1..3.
func SeedMedicines(ctx context.Context, repo *MedicineRepository) error {
	seeds := []domain.Medicine{
		{
			Name:         "Paracetamol 500mg",
			Description:  "For fever and pain relief",
			Category:     "Pain Relief",
			Quantity:     50,
			UnitValue:    decimal.NewFromInt(2),
			Expiry:       date(2024, 12, 31),
			Location:     "College Medical Room",
			DonorName:    "Rahul Sharma",
			DonorContact: "919876543210",
			ImageRef:     "https://m.media-amazon.com/images/I/61tL6yTZf6L._AC_UF1000,1000_QL80_.jpg",
			Status:       domain.StatusApproved,
			CreatedDate:  date(2023, 5, 15),
		},
		{
			Name:                 "Amoxicillin 250mg",
			Description:          "Antibiotic for bacterial infections",
			Category:             "Antibiotic",
			Quantity:             30,
			UnitValue:            decimal.NewFromInt(5),
			Expiry:               date(2024, 8, 30),
			Location:             "College Medical Room",
			RequiresPrescription: true,
			DonorName:            "Priya Patel",
			DonorContact:         "919876543211",
			ImageRef:             "https://5.imimg.com/data5/SELLER/Default/2021/12/SE/BN/YK/3033203/amoxicillin-250mg-capsule-1000x1000.jpg",
			Status:               domain.StatusApproved,
			CreatedDate:          date(2023, 6, 20),
		},
		{
			Name:                 "Atorvastatin 20mg",
			Description:          "Cholesterol lowering medication",
			Category:             "Cardiovascular",
			Quantity:             20,
			UnitValue:            decimal.NewFromInt(8),
			Expiry:               date(2025, 3, 15),
			Location:             "College Medical Room",
			RequiresPrescription: true,
			DonorName:            "Amit Kumar",
			DonorContact:         "919876543212",
			ImageRef:             "https://5.imimg.com/data5/SELLER/Default/2023/7/318929384/QH/VS/GT/199470473/atorvastatin-20-mg-tablet-500x500.jpg",
			Status:               domain.StatusPending,
			CreatedDate:          date(2023, 7, 10),
		},
	}

	for _, m := range seeds {
		if _, err := repo.SaveMedicine(ctx, m); err != nil {
			return fmt.Errorf("seeding medicine %q: %w", m.Name, err)
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
