package repositories

import (
	"context"

	"github.com/arogyamitram/am_backend/internal/core/domain"
)

// MedicineReader defines read operations over the listing store.
type MedicineReader interface {
	// FindMedicineByID retrieves a listing by id. Returns apperrors.ErrNotFound
	// when the id is unknown.
	FindMedicineByID(ctx context.Context, id int64) (*domain.Medicine, error)

	// FindMedicines retrieves every listing in insertion order.
	FindMedicines(ctx context.Context) ([]domain.Medicine, error)

	// FindMedicinesByDonor retrieves the listings with an exact donor name
	// match, in insertion order, regardless of status.
	FindMedicinesByDonor(ctx context.Context, donorName string) ([]domain.Medicine, error)
}

// MedicineWriter defines write operations over the listing store.
type MedicineWriter interface {
	// SaveMedicine appends a new listing, assigning the next id
	// (max existing id + 1, or 1 on an empty store) and returning the stored
	// record. The caller must not set ID.
	SaveMedicine(ctx context.Context, medicine domain.Medicine) (*domain.Medicine, error)

	// TransitionStatus flips a pending listing to next atomically.
	// Returns apperrors.ErrNotFound for an unknown id and
	// apperrors.ErrInvalidTransition when the listing is no longer pending.
	TransitionStatus(ctx context.Context, id int64, next domain.MedicineStatus) (*domain.Medicine, error)
}

// MedicineRepositoryFacade combines all listing-store repository interfaces.
type MedicineRepositoryFacade interface {
	MedicineReader
	MedicineWriter
}
