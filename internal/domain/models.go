package domain

import "time"

type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStaff || r == RoleAdmin
}

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type RequestType string

const (
	TypeReimbursement RequestType = "reimbursement"
	TypePayment       RequestType = "payment"
)

func (t RequestType) Valid() bool {
	return t == TypeReimbursement || t == TypePayment
}

// Request is a reimbursement or payment claim. ApprovedDate and PaidDate stay
// nil until the corresponding transition happens and go back to nil when the
// request is reverted, so "has this ever been approved/paid" is a nil check.
type Request struct {
	ID            int         `db:"id"`
	RequestID     string      `db:"request_id"`
	Type          RequestType `db:"type"`
	StaffName     string      `db:"staff_name"`
	Date          string      `db:"date"`
	Description   string      `db:"description"`
	Purpose       string      `db:"purpose"`
	Amount        float64     `db:"amount"`
	Status        Status      `db:"status"`
	ProofFilename string      `db:"proof_filename"`
	CreatedAt     time.Time   `db:"created_at"`
	ApprovedDate  *time.Time  `db:"approved_date"`
	PaidDate      *time.Time  `db:"paid_date"`
}

type PendingSummary struct {
	ReimbursementPending int
	PaymentPending       int
}

// RequestFilter scopes request queries. Zero-valued fields are skipped, so
// the empty filter selects everything.
type RequestFilter struct {
	StaffName     string
	Type          RequestType
	Status        Status
	Since         time.Time
	ProofFilename string
}
