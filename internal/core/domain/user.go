package domain

import "time"

// User represents an authenticated party in the domain. Clients own invoices
// as the payee; admins manage staff and issue invoices. Users carry no
// payment data of their own.
type User struct {
	UserID       string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
