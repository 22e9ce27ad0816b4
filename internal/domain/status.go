package domain

import (
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	// StatusPending is assigned at creation and restored on manual revert.
	StatusPending Status = "Pending"
	// StatusApproved marks a request cleared for payment.
	StatusApproved Status = "Approved"
	// StatusRejected is the terminal failure state.
	StatusRejected Status = "Rejected"
	// StatusPaid is the terminal success state.
	StatusPaid Status = "Paid"
)

var ErrInvalidStatus = errors.New("invalid status")

// ApplyTransition moves req into status, stamping and clearing the lifecycle
// dates:
//
//   - Paid sets PaidDate and backfills ApprovedDate only when it was never set,
//     so the original approval timestamp survives the Approved->Paid path.
//   - Approved sets ApprovedDate and unconditionally clears PaidDate.
//   - Pending and Rejected clear both dates.
//
// Statuses outside the four known values fail with ErrInvalidStatus and leave
// req untouched.
func ApplyTransition(req *Request, status Status, now time.Time) error {
	switch status {
	case StatusPaid:
		req.PaidDate = &now
		if req.ApprovedDate == nil {
			req.ApprovedDate = &now
		}
	case StatusApproved:
		req.ApprovedDate = &now
		req.PaidDate = nil
	case StatusPending, StatusRejected:
		req.ApprovedDate = nil
		req.PaidDate = nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	req.Status = status
	return nil
}
