package services

import (
	portsrepo "github.com/arogyamitram/am_backend/internal/core/ports/repositories"
	portssvc "github.com/arogyamitram/am_backend/internal/core/ports/services"
)

// NewServiceContainer wires the application services over the given
// repositories. The medicine service depends on the impact service so that an
// approval flips the listing status and feeds the running totals in one place.
func NewServiceContainer(
	userRepo portsrepo.UserReader,
	medicineRepo portsrepo.MedicineRepositoryFacade,
	impactRepo portsrepo.ImpactRepository,
) *portssvc.ServiceContainer {
	impactSvc := NewImpactService(impactRepo, medicineRepo)
	return &portssvc.ServiceContainer{
		User:     NewUserService(userRepo),
		Medicine: NewMedicineService(medicineRepo, impactSvc),
		Impact:   impactSvc,
	}
}
