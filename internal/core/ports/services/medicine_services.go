package services

import (
	"context"

	"github.com/arogyamitram/am_backend/internal/core/domain"
	"github.com/arogyamitram/am_backend/internal/dto"
)

// MedicineSvcFacade exposes the listing store, the role-scoped query views,
// and the approval workflow.
type MedicineSvcFacade interface {
	// CreateMedicine validates a donor's draft and appends it to the store
	// with status pending. Fails with *apperrors.ValidationError (all fields
	// reported, nothing applied, no id consumed) on bad input.
	CreateMedicine(ctx context.Context, req dto.CreateMedicineRequest, submitter domain.User) (*domain.Medicine, error)

	// GetMedicineByID retrieves one listing; apperrors.ErrNotFound if unknown.
	GetMedicineByID(ctx context.Context, id int64) (*domain.Medicine, error)

	// ListMedicines returns the full table in insertion order (admin view).
	ListMedicines(ctx context.Context) ([]domain.Medicine, error)

	// ListPendingMedicines returns the pending-approval queue (admin view).
	ListPendingMedicines(ctx context.Context) ([]domain.Medicine, error)

	// ListMedicinesByDonor returns a donor's own listings, all statuses.
	ListMedicinesByDonor(ctx context.Context, donorName string) ([]domain.Medicine, error)

	// FindAvailableMedicines returns approved listings matching the filter
	// (recipient/"find" view). Filters AND together; insertion order holds.
	FindAvailableMedicines(ctx context.Context, filter domain.MedicineFilter) ([]domain.Medicine, error)

	// ApproveMedicine transitions pending -> approved and adds the listing's
	// quantity and total value to the impact totals. ErrNotFound on an unknown
	// id, ErrInvalidTransition when the listing is no longer pending.
	ApproveMedicine(ctx context.Context, id int64) (*domain.Medicine, error)

	// RejectMedicine transitions pending -> rejected. Same failure modes as
	// ApproveMedicine; no impact side effect.
	RejectMedicine(ctx context.Context, id int64) (*domain.Medicine, error)
}
