package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/arogyamitram/am_backend/internal/apperrors"
	"github.com/arogyamitram/am_backend/internal/core/domain"
	portssvc "github.com/arogyamitram/am_backend/internal/core/ports/services"
	"github.com/arogyamitram/am_backend/internal/dto"
	"github.com/arogyamitram/am_backend/internal/middleware"
	"github.com/arogyamitram/am_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// medicineHandler handles HTTP requests for the listing store and workflow.
type medicineHandler struct {
	medicineService portssvc.MedicineSvcFacade
	userService     portssvc.UserSvcFacade
}

// newMedicineHandler creates a new medicineHandler.
func newMedicineHandler(ms portssvc.MedicineSvcFacade, us portssvc.UserSvcFacade) *medicineHandler {
	return &medicineHandler{
		medicineService: ms,
		userService:     us,
	}
}

// registerMedicineRoutes registers the listing routes with per-role guards.
func registerMedicineRoutes(rg *gin.RouterGroup, medicineService portssvc.MedicineSvcFacade, userService portssvc.UserSvcFacade) {
	h := newMedicineHandler(medicineService, userService)

	medicines := rg.Group("/medicines")
	{
		medicines.GET("", middleware.RequireRole(domain.RoleAdmin), h.listMedicines)
		medicines.GET("/pending", middleware.RequireRole(domain.RoleAdmin), h.listPendingMedicines)
		medicines.GET("/available", h.listAvailableMedicines)
		medicines.GET("/mine", middleware.RequireRole(domain.RoleDonor), h.listMyDonations)
		medicines.POST("", middleware.RequireRole(domain.RoleDonor), h.createMedicine)
		medicines.GET("/:id", h.getMedicine)
		medicines.POST("/:id/approve", middleware.RequireRole(domain.RoleAdmin), h.approveMedicine)
		medicines.POST("/:id/reject", middleware.RequireRole(domain.RoleAdmin), h.rejectMedicine)
		medicines.GET("/:id/contact", h.contactDonor)
	}
}

// currentProfile resolves the authenticated account from the identity store.
func (h *medicineHandler) currentProfile(c *gin.Context) (*domain.User, bool) {
	current, ok := middleware.GetCurrentUser(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	user, err := h.userService.GetUserByUsername(c.Request.Context(), current.Username)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to resolve authenticated account", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return user, true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid medicine id"})
		return 0, false
	}
	return id, true
}

// createMedicine godoc
// @Summary Submit a donation listing
// @Description Creates a pending medicine listing on behalf of the authenticated donor.
// @Tags medicines
// @Accept json
// @Produce json
// @Param medicine body dto.CreateMedicineRequest true "Listing draft"
// @Success 201 {object} dto.MedicineResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /medicines [post]
func (h *medicineHandler) createMedicine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create medicine request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	submitter, ok := h.currentProfile(c)
	if !ok {
		return
	}

	medicine, err := h.medicineService.CreateMedicine(c.Request.Context(), req, *submitter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create medicine", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create medicine"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToMedicineResponse(medicine))
}

// listMedicines godoc
// @Summary List all medicines
// @Description Returns the full listing table in insertion order (admin view).
// @Tags medicines
// @Produce json
// @Success 200 {object} dto.ListMedicinesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /medicines [get]
func (h *medicineHandler) listMedicines(c *gin.Context) {
	medicines, err := h.medicineService.ListMedicines(c.Request.Context())
	if err != nil {
		h.listFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMedicinesResponse(medicines))
}

// listPendingMedicines godoc
// @Summary List pending approvals
// @Description Returns the listings awaiting an approve/reject decision (admin view).
// @Tags medicines
// @Produce json
// @Success 200 {object} dto.ListMedicinesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /medicines/pending [get]
func (h *medicineHandler) listPendingMedicines(c *gin.Context) {
	medicines, err := h.medicineService.ListPendingMedicines(c.Request.Context())
	if err != nil {
		h.listFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMedicinesResponse(medicines))
}

// listAvailableMedicines godoc
// @Summary Find available medicines
// @Description Returns approved listings, optionally narrowed by search, category, and location. "All" means no restriction.
// @Tags medicines
// @Produce json
// @Param search query string false "Case-insensitive substring match on name"
// @Param category query string false "Exact category, or All"
// @Param location query string false "Exact location, or All"
// @Success 200 {object} dto.ListMedicinesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /medicines/available [get]
func (h *medicineHandler) listAvailableMedicines(c *gin.Context) {
	var params dto.ListMedicinesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	medicines, err := h.medicineService.FindAvailableMedicines(c.Request.Context(), params.Filter())
	if err != nil {
		h.listFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMedicinesResponse(medicines))
}

// listMyDonations godoc
// @Summary List own donations
// @Description Returns the authenticated donor's listings, every status included.
// @Tags medicines
// @Produce json
// @Success 200 {object} dto.ListMedicinesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /medicines/mine [get]
func (h *medicineHandler) listMyDonations(c *gin.Context) {
	donor, ok := h.currentProfile(c)
	if !ok {
		return
	}

	medicines, err := h.medicineService.ListMedicinesByDonor(c.Request.Context(), donor.Name)
	if err != nil {
		h.listFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMedicinesResponse(medicines))
}

// getMedicine godoc
// @Summary Get a medicine by id
// @Tags medicines
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} dto.MedicineResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /medicines/{id} [get]
func (h *medicineHandler) getMedicine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	medicine, err := h.medicineService.GetMedicineByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Medicine not found"})
			return
		}
		h.listFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMedicineResponse(medicine))
}

// approveMedicine godoc
// @Summary Approve a pending listing
// @Description Flips a pending listing to approved and adds its quantity and value to the impact totals.
// @Tags medicines
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} dto.MedicineResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Listing is no longer pending"
// @Security BearerAuth
// @Router /medicines/{id}/approve [post]
func (h *medicineHandler) approveMedicine(c *gin.Context) {
	h.transition(c, h.medicineService.ApproveMedicine)
}

// rejectMedicine godoc
// @Summary Reject a pending listing
// @Tags medicines
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} dto.MedicineResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Listing is no longer pending"
// @Security BearerAuth
// @Router /medicines/{id}/reject [post]
func (h *medicineHandler) rejectMedicine(c *gin.Context) {
	h.transition(c, h.medicineService.RejectMedicine)
}

// contactDonor godoc
// @Summary Build the donor contact link
// @Description Returns a pre-filled WhatsApp link for an approved listing.
// @Tags medicines
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} dto.ContactLinkResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Listing is not approved"
// @Security BearerAuth
// @Router /medicines/{id}/contact [get]
func (h *medicineHandler) contactDonor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	requester, ok := h.currentProfile(c)
	if !ok {
		return
	}

	medicine, err := h.medicineService.GetMedicineByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Medicine not found"})
			return
		}
		h.listFailed(c, err)
		return
	}
	// Donor contact details are only guaranteed for approved listings.
	if medicine.Status != domain.StatusApproved {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Medicine is not available"})
		return
	}

	c.JSON(http.StatusOK, dto.ContactLinkResponse{
		MedicineID:   medicine.ID,
		DonorName:    medicine.DonorName,
		DonorContact: medicine.DonorContact,
		WhatsAppURL:  utils.BuildWhatsAppLink(*medicine, *requester),
	})
}

// transition runs one workflow transition and maps its failure modes:
// unknown id to 404, non-pending listing to 409.
func (h *medicineHandler) transition(c *gin.Context, op func(context.Context, int64) (*domain.Medicine, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := pathID(c)
	if !ok {
		return
	}

	medicine, err := op(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Medicine not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			logger.Warn("Transition attempted on non-pending medicine", slog.Int64("medicine_id", id))
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Medicine is no longer pending"})
		default:
			logger.Error("Failed to transition medicine", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update medicine"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMedicineResponse(medicine))
}

func (h *medicineHandler) listFailed(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Error("Failed to load medicines", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load medicines"})
}
