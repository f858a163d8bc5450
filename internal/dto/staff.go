package dto

import (
	"time"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
)

// CreateStaffRequest defines the data needed to create a new staff member.
type CreateStaffRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	LTCAddress  *string `json:"ltc_address"`
	USDTAddress *string `json:"usdt_address"`
	USDCAddress *string `json:"usdc_address"`
}

// UpdateStaffRequest defines the data allowed when updating a staff member.
// Password is optional; when omitted the stored hash is kept.
type UpdateStaffRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    *string `json:"password"`
	LTCAddress  *string `json:"ltc_address"`
	USDTAddress *string `json:"usdt_address"`
	USDCAddress *string `json:"usdc_address"`
}

// StaffResponse defines the data returned for a staff member.
type StaffResponse struct {
	StaffID     string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	LTCAddress  *string   `json:"ltc_address,omitempty"`
	USDTAddress *string   `json:"usdt_address,omitempty"`
	USDCAddress *string   `json:"usdc_address,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToStaffResponse converts a domain.Staff to StaffResponse DTO
func ToStaffResponse(staff *domain.Staff) StaffResponse {
	return StaffResponse{
		StaffID:     staff.StaffID,
		Name:        staff.Name,
		Email:       staff.Email,
		LTCAddress:  staff.LTCAddress,
		USDTAddress: staff.USDTAddress,
		USDCAddress: staff.USDCAddress,
		Active:      staff.Active,
		CreatedAt:   staff.CreatedAt,
	}
}

// ToListStaffResponse converts a slice of domain.Staff to StaffResponse DTOs
func ToListStaffResponse(staff []domain.Staff) []StaffResponse {
	res := make([]StaffResponse, len(staff))
	for i := range staff {
		res[i] = ToStaffResponse(&staff[i])
	}
	return res
}
