package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
	"github.com/cpsys/crypto_payment_system/internal/dto"
	"github.com/cpsys/crypto_payment_system/internal/middleware"
)

// staffHandler handles HTTP requests related to staff members.
type staffHandler struct {
	staffService portssvc.StaffSvcFacade
}

func newStaffHandler(ss portssvc.StaffSvcFacade) *staffHandler {
	return &staffHandler{
		staffService: ss,
	}
}

// registerStaffRoutes registers all staff-related routes. Creation and
// modification are admin only; reads are open to any authenticated caller.
func registerStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvcFacade) {
	h := newStaffHandler(staffService)

	staff := rg.Group("/staff")
	{
		staff.POST("", middleware.RequireRoles(domain.RoleAdmin), h.createStaff)
		staff.GET("", h.listStaff)
		staff.GET("/:id", h.getStaff)
		staff.PUT("/:id", middleware.RequireRoles(domain.RoleAdmin), h.updateStaff)
	}
}

// createStaff godoc
// @Summary Create a new staff member
// @Description Creates a staff member with optional payout addresses. Admin only.
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body dto.CreateStaffRequest true "Staff details"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse "Invalid input or email already registered"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff [post]
func (h *staffHandler) createStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create staff member")
		return
	}

	logger.Info("Staff member created", slog.String("staff_id", staff.StaffID))
	c.JSON(http.StatusCreated, dto.ToStaffResponse(staff))
}

// listStaff godoc
// @Summary List active staff members
// @Description Retrieves all active staff members, newest first.
// @Tags staff
// @Produce json
// @Success 200 {array} dto.StaffResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff [get]
func (h *staffHandler) listStaff(c *gin.Context) {
	staff, err := h.staffService.ListActiveStaff(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list staff members")
		return
	}

	c.JSON(http.StatusOK, dto.ToListStaffResponse(staff))
}

// getStaff godoc
// @Summary Get a staff member by ID
// @Description Retrieves details for a specific active staff member.
// @Tags staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} dto.StaffResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id} [get]
func (h *staffHandler) getStaff(c *gin.Context) {
	staff, err := h.staffService.GetStaffByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve staff member")
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// updateStaff godoc
// @Summary Update a staff member
// @Description Updates a staff member's details and payout addresses. Admin only.
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param staff body dto.UpdateStaffRequest true "Updated staff details"
// @Success 200 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id} [put]
func (h *staffHandler) updateStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update staff member")
		return
	}

	logger.Info("Staff member updated", slog.String("staff_id", staff.StaffID))
	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}
