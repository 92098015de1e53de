package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/arogyamitram/am_backend/internal/apperrors"
	"github.com/arogyamitram/am_backend/internal/core/domain"
	portsrepo "github.com/arogyamitram/am_backend/internal/core/ports/repositories"
	portssvc "github.com/arogyamitram/am_backend/internal/core/ports/services"
	"github.com/arogyamitram/am_backend/internal/dto"
	"github.com/arogyamitram/am_backend/internal/imaging"
	"github.com/arogyamitram/am_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// medicineService provides the listing store operations, the role-scoped
// query views, and the approval workflow.
type medicineService struct {
	medicineRepo portsrepo.MedicineRepositoryFacade
	impactSvc    portssvc.ImpactSvcFacade
}

// NewMedicineService creates a new MedicineService.
func NewMedicineService(medicineRepo portsrepo.MedicineRepositoryFacade, impactSvc portssvc.ImpactSvcFacade) portssvc.MedicineSvcFacade {
	return &medicineService{
		medicineRepo: medicineRepo,
		impactSvc:    impactSvc,
	}
}

var _ portssvc.MedicineSvcFacade = (*medicineService)(nil)

// validateDraft collects every missing or invalid field of a listing draft.
// The expiry check uses calendar dates, so an expiry of today passes.
func validateDraft(req dto.CreateMedicineRequest, today time.Time) (time.Time, *apperrors.ValidationError) {
	var fields []string

	if strings.TrimSpace(req.Name) == "" {
		fields = append(fields, "name")
	}
	if req.Quantity <= 0 {
		fields = append(fields, "quantity")
	}
	if req.UnitValue.LessThanOrEqual(decimal.Zero) {
		fields = append(fields, "unitValue")
	}
	if !domain.IsValidLocation(req.Location) {
		fields = append(fields, "location")
	}

	expiry, err := time.ParseInLocation(dto.DateLayout, req.Expiry, time.UTC)
	if err != nil || expiry.Before(today) {
		fields = append(fields, "expiry")
	}

	if len(fields) > 0 {
		return time.Time{}, &apperrors.ValidationError{Fields: fields}
	}
	return expiry, nil
}

// CreateMedicine validates the draft and appends it to the store with status
// pending. Validation is all-or-nothing: on failure nothing is stored and no
// id is consumed. Image conversion degrades to the placeholder reference and
// never fails the creation.
func (s *medicineService) CreateMedicine(ctx context.Context, req dto.CreateMedicineRequest, submitter domain.User) (*domain.Medicine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	today := truncateToDate(time.Now().UTC())
	expiry, verr := validateDraft(req, today)
	if verr != nil {
		logger.Warn("Medicine draft failed validation", slog.Any("fields", verr.Fields))
		return nil, verr
	}

	medicine := domain.Medicine{
		Name:                 req.Name,
		Description:          req.Description,
		Category:             req.Category,
		Quantity:             req.Quantity,
		UnitValue:            req.UnitValue,
		Expiry:               expiry,
		Location:             req.Location,
		RequiresPrescription: req.RequiresPrescription,
		DonorName:            submitter.Name,
		DonorContact:         submitter.Phone,
		ImageRef:             imaging.InlineRef(req.ImageData),
		Status:               domain.StatusPending,
		CreatedDate:          today,
	}

	saved, err := s.medicineRepo.SaveMedicine(ctx, medicine)
	if err != nil {
		return nil, err
	}

	logger.Info("Medicine listing created",
		slog.Int64("medicine_id", saved.ID),
		slog.String("donor", saved.DonorName),
	)
	return saved, nil
}

// GetMedicineByID retrieves one listing.
func (s *medicineService) GetMedicineByID(ctx context.Context, id int64) (*domain.Medicine, error) {
	return s.medicineRepo.FindMedicineByID(ctx, id)
}

// ListMedicines returns the full table in insertion order.
func (s *medicineService) ListMedicines(ctx context.Context) ([]domain.Medicine, error) {
	return s.medicineRepo.FindMedicines(ctx)
}

// ListPendingMedicines returns the pending-approval queue in insertion order.
func (s *medicineService) ListPendingMedicines(ctx context.Context) ([]domain.Medicine, error) {
	medicines, err := s.medicineRepo.FindMedicines(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Medicine
	for _, m := range medicines {
		if m.Status == domain.StatusPending {
			out = append(out, m)
		}
	}
	return out, nil
}

// ListMedicinesByDonor returns a donor's own listings in insertion order,
// every status included.
func (s *medicineService) ListMedicinesByDonor(ctx context.Context, donorName string) ([]domain.Medicine, error) {
	return s.medicineRepo.FindMedicinesByDonor(ctx, donorName)
}

// FindAvailableMedicines returns approved listings matching the filter.
// Filters combine with logical AND; an empty search and the "All" sentinel
// are no-ops. Filtering is stable: insertion order is preserved.
func (s *medicineService) FindAvailableMedicines(ctx context.Context, filter domain.MedicineFilter) ([]domain.Medicine, error) {
	medicines, err := s.medicineRepo.FindMedicines(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(filter.Search)
	var out []domain.Medicine
	for _, m := range medicines {
		if m.Status != domain.StatusApproved {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(m.Name), search) {
			continue
		}
		if filter.Category != "" && filter.Category != domain.FilterAll && m.Category != filter.Category {
			continue
		}
		if filter.Location != "" && filter.Location != domain.FilterAll && m.Location != filter.Location {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// ApproveMedicine transitions a pending listing to approved and folds its
// quantity and total value into the impact totals. Approval is a one-way
// commitment: there is no un-approve, and the totals are never decremented.
func (s *medicineService) ApproveMedicine(ctx context.Context, id int64) (*domain.Medicine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	medicine, err := s.medicineRepo.TransitionStatus(ctx, id, domain.StatusApproved)
	if err != nil {
		return nil, err
	}

	if err := s.impactSvc.RecordApproval(ctx, medicine.Quantity, medicine.TotalValue()); err != nil {
		// The status flip already committed; the listing stays approved.
		logger.Error("Failed to record approval in impact totals",
			slog.Int64("medicine_id", id),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Medicine approved",
		slog.Int64("medicine_id", id),
		slog.Int64("quantity", medicine.Quantity),
		slog.String("value", medicine.TotalValue().String()),
	)
	return medicine, nil
}

// RejectMedicine transitions a pending listing to rejected. No impact side
// effect.
func (s *medicineService) RejectMedicine(ctx context.Context, id int64) (*domain.Medicine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	medicine, err := s.medicineRepo.TransitionStatus(ctx, id, domain.StatusRejected)
	if err != nil {
		return nil, err
	}

	logger.Info("Medicine rejected", slog.Int64("medicine_id", id))
	return medicine, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
