// Package memory provides the in-memory repository adapters backing the
// application. Data lives for the life of the process only; losing it on
// restart is an accepted property of the system, not an oversight.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/arogyamitram/am_backend/internal/apperrors"
	"github.com/arogyamitram/am_backend/internal/core/domain"
	portsrepo "github.com/arogyamitram/am_backend/internal/core/ports/repositories"
)

// MedicineRepository is the authoritative listing table. All mutations happen
// under a single lock so id assignment and status transitions are atomic even
// with concurrent HTTP requests.
type MedicineRepository struct {
	mu        sync.RWMutex
	medicines []domain.Medicine // Insertion order is the canonical order
	byID      map[int64]int     // id -> index into medicines
}

// NewMedicineRepository creates an empty listing store.
func NewMedicineRepository() *MedicineRepository {
	return &MedicineRepository{
		byID: make(map[int64]int),
	}
}

var _ portsrepo.MedicineRepositoryFacade = (*MedicineRepository)(nil)

// SaveMedicine appends the listing, assigning max(existing ids)+1 (1 on an
// empty store) regardless of any id the caller set.
func (r *MedicineRepository) SaveMedicine(_ context.Context, medicine domain.Medicine) (*domain.Medicine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for id := range r.byID {
		if id > maxID {
			maxID = id
		}
	}
	medicine.ID = maxID + 1

	r.byID[medicine.ID] = len(r.medicines)
	r.medicines = append(r.medicines, medicine)
	return &medicine, nil
}

// FindMedicineByID returns a copy of the listing with the given id.
func (r *MedicineRepository) FindMedicineByID(_ context.Context, id int64) (*domain.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("medicine %d: %w", id, apperrors.ErrNotFound)
	}
	m := r.medicines[idx]
	return &m, nil
}

// FindMedicines returns all listings in insertion order.
func (r *MedicineRepository) FindMedicines(_ context.Context) ([]domain.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Medicine, len(r.medicines))
	copy(out, r.medicines)
	return out, nil
}

// FindMedicinesByDonor returns the listings with an exact donor name match,
// in insertion order, regardless of status.
func (r *MedicineRepository) FindMedicinesByDonor(_ context.Context, donorName string) ([]domain.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Medicine
	for _, m := range r.medicines {
		if m.DonorName == donorName {
			out = append(out, m)
		}
	}
	return out, nil
}

// TransitionStatus flips a pending listing to next. The check and the flip
// happen under the write lock, so a second approve/reject on the same listing
// always observes the terminal state and fails.
func (r *MedicineRepository) TransitionStatus(_ context.Context, id int64, next domain.MedicineStatus) (*domain.Medicine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("medicine %d: %w", id, apperrors.ErrNotFound)
	}
	if r.medicines[idx].Status != domain.StatusPending {
		return nil, fmt.Errorf("medicine %d is %s: %w", id, r.medicines[idx].Status, apperrors.ErrInvalidTransition)
	}

	r.medicines[idx].Status = next
	m := r.medicines[idx]
	return &m, nil
}
