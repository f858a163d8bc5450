package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
	"github.com/cpsys/crypto_payment_system/internal/dto"
	"github.com/cpsys/crypto_payment_system/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService  portssvc.UserSvcFacade
	staffService portssvc.StaffSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade, ss portssvc.StaffSvcFacade) *userHandler {
	return &userHandler{
		userService:  us,
		staffService: ss,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, staffService portssvc.StaffSvcFacade) {
	h := newUserHandler(userService, staffService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
	}
	rg.GET("/auth/me", h.getMe)
}

// getMe godoc
// @Summary Get the current identity
// @Description Retrieves the profile of the authenticated caller. Staff
// @Description identities are resolved from the staff records and presented
// @Description in the same shape as user profiles.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if identity.Role == domain.RoleStaff {
		staff, err := h.staffService.GetStaffByID(c.Request.Context(), identity.SubjectID)
		if err != nil {
			respondError(c, err, "Failed to retrieve staff profile")
			return
		}
		c.JSON(http.StatusOK, dto.UserResponse{
			UserID:    staff.StaffID,
			Email:     staff.Email,
			FullName:  staff.Name,
			Role:      string(domain.RoleStaff),
			CreatedAt: staff.CreatedAt,
		})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), identity.SubjectID)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
