package dto

import (
	"github.com/arogyamitram/am_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates (expiry, created date).
const DateLayout = "2006-01-02"

// CreateMedicineRequest is a donor's listing draft. Image data is optional;
// a missing or undecodable image degrades to the placeholder reference and
// never fails the creation.
type CreateMedicineRequest struct {
	Name                 string          `json:"name" binding:"required"`
	Description          string          `json:"description"`
	Category             string          `json:"category"` // Suggested set only, not enforced
	Quantity             int64           `json:"quantity" binding:"required,gt=0"`
	UnitValue            decimal.Decimal `json:"unitValue" binding:"required"`
	Expiry               string          `json:"expiry" binding:"required,datetime=2006-01-02,futuredate"`
	Location             string          `json:"location" binding:"required"`
	RequiresPrescription bool            `json:"requiresPrescription"`
	ImageData            string          `json:"imageData"` // Base64-encoded upload, optionally data-URL prefixed
}

// ListMedicinesParams are the recipient-view filters. "All" (or absence)
// means no restriction on that dimension.
type ListMedicinesParams struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Location string `form:"location"`
}

// Filter converts the query params to a domain filter.
func (p ListMedicinesParams) Filter() domain.MedicineFilter {
	return domain.MedicineFilter{
		Search:   p.Search,
		Category: p.Category,
		Location: p.Location,
	}
}

// MedicineResponse is the externally visible listing record.
type MedicineResponse struct {
	ID                   int64                 `json:"id"`
	Name                 string                `json:"name"`
	Description          string                `json:"description"`
	Category             string                `json:"category"`
	Quantity             int64                 `json:"quantity"`
	UnitValue            decimal.Decimal       `json:"unitValue"`
	TotalValue           decimal.Decimal       `json:"totalValue"`
	Expiry               string                `json:"expiry"`
	Location             string                `json:"location"`
	RequiresPrescription bool                  `json:"requiresPrescription"`
	DonorName            string                `json:"donorName"`
	DonorContact         string                `json:"donorContact"`
	ImageRef             string                `json:"imageRef"`
	Status               domain.MedicineStatus `json:"status"`
	StatusLabel          string                `json:"statusLabel"` // PENDING | APPROVED | REJECTED
	CreatedDate          string                `json:"createdDate"`
}

// ListMedicinesResponse wraps a listing collection.
type ListMedicinesResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
}

// ContactLinkResponse carries the pre-filled outbound message link for an
// approved listing.
type ContactLinkResponse struct {
	MedicineID   int64  `json:"medicineId"`
	DonorName    string `json:"donorName"`
	DonorContact string `json:"donorContact"`
	WhatsAppURL  string `json:"whatsappUrl"`
}

// ToMedicineResponse maps a domain listing to its response DTO.
func ToMedicineResponse(m *domain.Medicine) MedicineResponse {
	return MedicineResponse{
		ID:                   m.ID,
		Name:                 m.Name,
		Description:          m.Description,
		Category:             m.Category,
		Quantity:             m.Quantity,
		UnitValue:            m.UnitValue,
		TotalValue:           m.TotalValue(),
		Expiry:               m.Expiry.Format(DateLayout),
		Location:             m.Location,
		RequiresPrescription: m.RequiresPrescription,
		DonorName:            m.DonorName,
		DonorContact:         m.DonorContact,
		ImageRef:             m.ImageRef,
		Status:               m.Status,
		StatusLabel:          statusLabel(m.Status),
		CreatedDate:          m.CreatedDate.Format(DateLayout),
	}
}

// ToListMedicinesResponse maps a listing slice, preserving order.
func ToListMedicinesResponse(medicines []domain.Medicine) ListMedicinesResponse {
	out := make([]MedicineResponse, len(medicines))
	for i := range medicines {
		out[i] = ToMedicineResponse(&medicines[i])
	}
	return ListMedicinesResponse{Medicines: out}
}

func statusLabel(s domain.MedicineStatus) string {
	switch s {
	case domain.StatusPending:
		return "PENDING"
	case domain.StatusApproved:
		return "APPROVED"
	case domain.StatusRejected:
		return "REJECTED"
	}
	return ""
}
