package domain

import "fmt"

// Role is the closed set of roles a caller can act as. Authorization checks
// switch exhaustively over this type rather than comparing raw strings.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleClient Role = "client"
)

// ParseRole validates a raw role value against the known set.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStaff:
		return RoleStaff, nil
	case RoleClient:
		return RoleClient, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

// CanIssueInvoices reports whether the role may create invoices and staff accounts.
func (r Role) CanIssueInvoices() bool {
	return r == RoleAdmin
}
