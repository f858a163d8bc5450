package models

import "time"

// Staff represents a staff row in the staff table.
type Staff struct {
	StaffID      string    `db:"staff_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	LTCAddress   *string   `db:"ltc_address"`
	USDTAddress  *string   `db:"usdt_address"`
	USDCAddress  *string   `db:"usdc_address"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
}
