package domain

// Identity is the authenticated caller as established by the auth
// middleware: a subject ID plus its role. Services use it to scope reads
// (clients see only their own invoices) and to authorize writes.
type Identity struct {
	SubjectID string
	Role      Role
}
