package domain

import "time"

// Staff is a payout identity with up to one address per supported currency.
// Addresses are immutable inputs to invoice creation: the invoice snapshots
// the address at creation time and never follows later staff edits.
type Staff struct {
	StaffID      string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	LTCAddress   *string   `json:"ltc_address,omitempty"`
	USDTAddress  *string   `json:"usdt_address,omitempty"`
	USDCAddress  *string   `json:"usdc_address,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// AddressFor resolves the staff member's payout address for the given
// currency. The second return is false when no address is configured.
func (s Staff) AddressFor(currency Currency) (string, bool) {
	var addr *string
	switch currency {
	case CurrencyLTC:
		addr = s.LTCAddress
	case CurrencyUSDT:
		addr = s.USDTAddress
	case CurrencyUSDC:
		addr = s.USDCAddress
	}
	if addr == nil || *addr == "" {
		return "", false
	}
	return *addr, true
}
