package services_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arogyamitram/am_backend/internal/adapters/store/memory"
	"github.com/arogyamitram/am_backend/internal/apperrors"
	"github.com/arogyamitram/am_backend/internal/core/domain"
	portssvc "github.com/arogyamitram/am_backend/internal/core/ports/services"
	"github.com/arogyamitram/am_backend/internal/core/services"
	"github.com/arogyamitram/am_backend/internal/dto"
	"github.com/arogyamitram/am_backend/internal/imaging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// The suite runs the services over the real in-memory adapters: the memory
// store is the production store, so there is nothing worth mocking here.
type MedicineServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	medicineRepo *memory.MedicineRepository
	impactRepo   *memory.ImpactRepository
	services     *portssvc.ServiceContainer
	donor        domain.User
}

func (s *MedicineServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.medicineRepo = memory.NewMedicineRepository()
	s.impactRepo = memory.NewImpactRepository(memory.SeedImpactStats())
	s.services = services.NewServiceContainer(
		memory.NewUserRepository(memory.SeedUsers()),
		s.medicineRepo,
		s.impactRepo,
	)
	s.donor = domain.User{
		Username: "donor1",
		Name:     "Rahul Sharma",
		Phone:    "919876543210",
		Role:     domain.RoleDonor,
		Org:      "Student",
	}
}

func (s *MedicineServiceTestSuite) validDraft() dto.CreateMedicineRequest {
	return dto.CreateMedicineRequest{
		Name:      "Ibuprofen",
		Category:  "Pain Relief",
		Quantity:  10,
		UnitValue: decimal.NewFromInt(3),
		Expiry:    time.Now().UTC().AddDate(1, 0, 0).Format(dto.DateLayout),
		Location:  "Hostel A",
	}
}

func (s *MedicineServiceTestSuite) mustCreate(req dto.CreateMedicineRequest) *domain.Medicine {
	m, err := s.services.Medicine.CreateMedicine(s.ctx, req, s.donor)
	s.Require().NoError(err)
	return m
}

func (s *MedicineServiceTestSuite) stats() domain.ImpactStats {
	stats, err := s.services.Impact.GetImpactStats(s.ctx)
	s.Require().NoError(err)
	return stats
}

func (s *MedicineServiceTestSuite) TestCreateAssignsMonotonicIDs() {
	first := s.mustCreate(s.validDraft())
	s.Equal(int64(1), first.ID)

	second := s.mustCreate(s.validDraft())
	s.Equal(int64(2), second.ID)

	// A rejected creation must not consume an id.
	bad := s.validDraft()
	bad.Quantity = 0
	_, err := s.services.Medicine.CreateMedicine(s.ctx, bad, s.donor)
	s.Require().Error(err)

	third := s.mustCreate(s.validDraft())
	s.Equal(int64(3), third.ID)
}

func (s *MedicineServiceTestSuite) TestCreateSetsPendingAndSubmitterFields() {
	m := s.mustCreate(s.validDraft())

	s.Equal(domain.StatusPending, m.Status)
	s.Equal("Rahul Sharma", m.DonorName)
	s.Equal("919876543210", m.DonorContact)
	s.Equal(time.Now().UTC().Format(dto.DateLayout), m.CreatedDate.Format(dto.DateLayout))
}

func (s *MedicineServiceTestSuite) TestCreateWithoutImageUsesPlaceholder() {
	m := s.mustCreate(s.validDraft())
	s.Equal(imaging.PlaceholderRef, m.ImageRef)
}

func (s *MedicineServiceTestSuite) TestCreateWithGarbageImageDegradesToPlaceholder() {
	req := s.validDraft()
	req.ImageData = "not-base64!!"
	m := s.mustCreate(req)
	s.Equal(imaging.PlaceholderRef, m.ImageRef)
}

func (s *MedicineServiceTestSuite) TestCreateValidationIsAllOrNothing() {
	cases := map[string]func(*dto.CreateMedicineRequest){
		"missing name":      func(r *dto.CreateMedicineRequest) { r.Name = "  " },
		"zero quantity":     func(r *dto.CreateMedicineRequest) { r.Quantity = 0 },
		"negative quantity": func(r *dto.CreateMedicineRequest) { r.Quantity = -5 },
		"zero unit value":   func(r *dto.CreateMedicineRequest) { r.UnitValue = decimal.Zero },
		"missing location":  func(r *dto.CreateMedicineRequest) { r.Location = "" },
		"unknown location":  func(r *dto.CreateMedicineRequest) { r.Location = "Gym" },
		"past expiry": func(r *dto.CreateMedicineRequest) {
			r.Expiry = time.Now().UTC().AddDate(0, 0, -1).Format(dto.DateLayout)
		},
		"unparseable expiry": func(r *dto.CreateMedicineRequest) { r.Expiry = "soon" },
	}

	for name, mutate := range cases {
		req := s.validDraft()
		mutate(&req)

		_, err := s.services.Medicine.CreateMedicine(s.ctx, req, s.donor)
		s.Require().ErrorIs(err, apperrors.ErrValidation, name)

		all, listErr := s.services.Medicine.ListMedicines(s.ctx)
		s.Require().NoError(listErr)
		s.Empty(all, "store must stay unchanged after %s", name)
	}
}

func (s *MedicineServiceTestSuite) TestCreateReportsEveryBadField() {
	req := s.validDraft()
	req.Name = ""
	req.Quantity = 0
	req.Location = "Gym"

	_, err := s.services.Medicine.CreateMedicine(s.ctx, req, s.donor)

	var verr *apperrors.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.ElementsMatch([]string{"name", "quantity", "location"}, verr.Fields)
}

func (s *MedicineServiceTestSuite) TestCreateAllowsMissingCategory() {
	req := s.validDraft()
	req.Category = ""

	m := s.mustCreate(req)
	s.Equal(domain.StatusPending, m.Status)
	s.Empty(m.Category)
}

func (s *MedicineServiceTestSuite) TestCreateAcceptsExpiryToday() {
	req := s.validDraft()
	req.Expiry = time.Now().UTC().Format(dto.DateLayout)
	m := s.mustCreate(req)
	s.Equal(domain.StatusPending, m.Status)
}

func (s *MedicineServiceTestSuite) TestApproveIncrementsImpactTotals() {
	before := s.stats()
	m := s.mustCreate(s.validDraft())

	approved, err := s.services.Medicine.ApproveMedicine(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, approved.Status)

	after := s.stats()
	s.Equal(before.TotalMedicines+10, after.TotalMedicines)
	s.True(before.TotalValue.Add(decimal.NewFromInt(30)).Equal(after.TotalValue),
		"expected %s, got %s", before.TotalValue.Add(decimal.NewFromInt(30)), after.TotalValue)
}

func (s *MedicineServiceTestSuite) TestRejectLeavesImpactTotalsAlone() {
	before := s.stats()
	m := s.mustCreate(s.validDraft())

	rejected, err := s.services.Medicine.RejectMedicine(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusRejected, rejected.Status)

	after := s.stats()
	s.Equal(before.TotalMedicines, after.TotalMedicines)
	s.True(before.TotalValue.Equal(after.TotalValue))
}

func (s *MedicineServiceTestSuite) TestTerminalStatusesRefuseTransitions() {
	m := s.mustCreate(s.validDraft())
	_, err := s.services.Medicine.ApproveMedicine(s.ctx, m.ID)
	s.Require().NoError(err)
	statsAfterApprove := s.stats()

	_, err = s.services.Medicine.RejectMedicine(s.ctx, m.ID)
	s.Require().ErrorIs(err, apperrors.ErrInvalidTransition)

	_, err = s.services.Medicine.ApproveMedicine(s.ctx, m.ID)
	s.Require().ErrorIs(err, apperrors.ErrInvalidTransition)

	// Neither the listing nor the totals moved.
	got, err := s.services.Medicine.GetMedicineByID(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, got.Status)
	s.Equal(statsAfterApprove, s.stats())
}

func (s *MedicineServiceTestSuite) TestConcurrentApprovalsIncrementTotalsOnce() {
	before := s.stats()
	m := s.mustCreate(s.validDraft())

	const n = 10
	var wg sync.WaitGroup
	wg.Add(n)
	var approvals atomic.Int64
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := s.services.Medicine.ApproveMedicine(s.ctx, m.ID); err == nil {
				approvals.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int64(1), approvals.Load())
	after := s.stats()
	s.Equal(before.TotalMedicines+10, after.TotalMedicines)
	s.True(before.TotalValue.Add(decimal.NewFromInt(30)).Equal(after.TotalValue),
		"got %s", after.TotalValue)
}

func (s *MedicineServiceTestSuite) TestTransitionUnknownIDIsNotFound() {
	_, err := s.services.Medicine.ApproveMedicine(s.ctx, 42)
	s.Require().ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.services.Medicine.RejectMedicine(s.ctx, 42)
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *MedicineServiceTestSuite) TestFindAvailableShowsApprovedOnly() {
	pending := s.mustCreate(s.validDraft())
	approved := s.mustCreate(s.validDraft())
	rejected := s.mustCreate(s.validDraft())
	_, err := s.services.Medicine.ApproveMedicine(s.ctx, approved.ID)
	s.Require().NoError(err)
	_, err = s.services.Medicine.RejectMedicine(s.ctx, rejected.ID)
	s.Require().NoError(err)

	available, err := s.services.Medicine.FindAvailableMedicines(s.ctx, domain.MedicineFilter{})
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal(approved.ID, available[0].ID)
	s.NotEqual(pending.ID, available[0].ID)
}

func (s *MedicineServiceTestSuite) TestFindAvailableFiltersCombineWithAND() {
	para := s.validDraft()
	para.Name = "Paracetamol 500mg"
	para.Location = "Hostel A"

	amox := s.validDraft()
	amox.Name = "Amoxicillin 250mg"
	amox.Category = "Antibiotic"
	amox.Location = "Hostel B"

	vitamins := s.validDraft()
	vitamins.Name = "Vitamin C"
	vitamins.Category = "Vitamins"
	vitamins.Location = "Hostel A"

	for _, req := range []dto.CreateMedicineRequest{para, amox, vitamins} {
		m := s.mustCreate(req)
		_, err := s.services.Medicine.ApproveMedicine(s.ctx, m.ID)
		s.Require().NoError(err)
	}

	// Search is a case-insensitive substring match.
	got, err := s.services.Medicine.FindAvailableMedicines(s.ctx, domain.MedicineFilter{Search: "paraCETamol"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Paracetamol 500mg", got[0].Name)

	// "All" sentinels are no-ops.
	got, err = s.services.Medicine.FindAvailableMedicines(s.ctx, domain.MedicineFilter{Category: "All", Location: "All"})
	s.Require().NoError(err)
	s.Len(got, 3)

	// Category and location AND together.
	got, err = s.services.Medicine.FindAvailableMedicines(s.ctx, domain.MedicineFilter{Category: "Pain Relief", Location: "Hostel A"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Paracetamol 500mg", got[0].Name)

	got, err = s.services.Medicine.FindAvailableMedicines(s.ctx, domain.MedicineFilter{Category: "Antibiotic", Location: "Hostel A"})
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *MedicineServiceTestSuite) TestFindAvailablePreservesInsertionOrder() {
	names := []string{"Zinc", "Aspirin", "Metformin"}
	for _, name := range names {
		req := s.validDraft()
		req.Name = name
		m := s.mustCreate(req)
		_, err := s.services.Medicine.ApproveMedicine(s.ctx, m.ID)
		s.Require().NoError(err)
	}

	got, err := s.services.Medicine.FindAvailableMedicines(s.ctx, domain.MedicineFilter{})
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	for i, name := range names {
		s.Equal(name, got[i].Name)
	}
}

func (s *MedicineServiceTestSuite) TestListByDonorIgnoresStatus() {
	mine := s.mustCreate(s.validDraft())
	_, err := s.services.Medicine.RejectMedicine(s.ctx, mine.ID)
	s.Require().NoError(err)
	s.mustCreate(s.validDraft())

	other := s.donor
	other.Name = "Priya Patel"
	req := s.validDraft()
	_, err = s.services.Medicine.CreateMedicine(s.ctx, req, other)
	s.Require().NoError(err)

	got, err := s.services.Medicine.ListMedicinesByDonor(s.ctx, "Rahul Sharma")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(domain.StatusRejected, got[0].Status)
	s.Equal(domain.StatusPending, got[1].Status)
	for _, m := range got {
		s.Equal("Rahul Sharma", m.DonorName)
	}
}

func (s *MedicineServiceTestSuite) TestListPendingMedicines() {
	first := s.mustCreate(s.validDraft())
	second := s.mustCreate(s.validDraft())
	_, err := s.services.Medicine.ApproveMedicine(s.ctx, first.ID)
	s.Require().NoError(err)

	got, err := s.services.Medicine.ListPendingMedicines(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(second.ID, got[0].ID)
}

func (s *MedicineServiceTestSuite) TestSeededStoreContinuesIDSequence() {
	s.Require().NoError(memory.SeedMedicines(s.ctx, s.medicineRepo))

	m := s.mustCreate(s.validDraft())
	s.Equal(int64(4), m.ID)
}

func TestMedicineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MedicineServiceTestSuite))
}
