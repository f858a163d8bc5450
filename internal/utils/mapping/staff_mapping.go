package mapping

import (
	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	"github.com/cpsys/crypto_payment_system/internal/models"
)

// ToModelStaff converts a domain Staff to a model Staff
func ToModelStaff(d domain.Staff) models.Staff {
	return models.Staff{
		StaffID:      d.StaffID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		LTCAddress:   d.LTCAddress,
		USDTAddress:  d.USDTAddress,
		USDCAddress:  d.USDCAddress,
		Active:       d.Active,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainStaff converts a model Staff to a domain Staff
func ToDomainStaff(m models.Staff) domain.Staff {
	return domain.Staff{
		StaffID:      m.StaffID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		LTCAddress:   m.LTCAddress,
		USDTAddress:  m.USDTAddress,
		USDCAddress:  m.USDCAddress,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainStaffSlice converts a slice of model Staff to a slice of domain Staff
func ToDomainStaffSlice(ms []models.Staff) []domain.Staff {
	ds := make([]domain.Staff, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStaff(m)
	}
	return ds
}
