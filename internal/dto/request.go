package dto

import (
	"time"

	"github.com/sokha-dev/staffportal/internal/domain"
)

// RequestDTO mirrors the stored request. Fields that only exist for one
// request type, and date stamps that only exist in some statuses, are
// omitted from the payload rather than sent as null.
type RequestDTO struct {
	ID            int        `json:"id" example:"7"`
	RequestID     string     `json:"request_id" example:"PR0007"`
	Type          string     `json:"type" example:"reimbursement"`
	StaffName     string     `json:"staffName" example:"somchai"`
	Date          string     `json:"date" example:"2024-05-01"`
	Description   string     `json:"description,omitempty" example:"train tickets"`
	Purpose       string     `json:"purpose,omitempty" example:"vendor invoice"`
	Amount        float64    `json:"amount" example:"42.5"`
	Status        string     `json:"status" example:"Pending"`
	ProofFilename string     `json:"proof_filename" example:"somchai_3f2a_ticket.pdf"`
	CreatedAt     time.Time  `json:"created_at" example:"2024-05-01T08:30:00Z"`
	ApprovedDate  *time.Time `json:"approved_date,omitempty"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
}

type SubmitResponseDTO struct {
	Message   string `json:"message" example:"Reimbursement submitted with ID: PR0007"`
	RequestID string `json:"request_id" example:"PR0007"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status" example:"Approved"`
}

type PendingSummaryDTO struct {
	ReimbursementPending int `json:"reimbursement_pending" example:"3"`
	PaymentPending       int `json:"payment_pending" example:"1"`
}

func NewRequestDTO(r domain.Request) RequestDTO {
	return RequestDTO{
		ID:            r.ID,
		RequestID:     r.RequestID,
		Type:          string(r.Type),
		StaffName:     r.StaffName,
		Date:          r.Date,
		Description:   r.Description,
		Purpose:       r.Purpose,
		Amount:        r.Amount,
		Status:        string(r.Status),
		ProofFilename: r.ProofFilename,
		CreatedAt:     r.CreatedAt,
		ApprovedDate:  r.ApprovedDate,
		PaidDate:      r.PaidDate,
	}
}

func NewRequestListDTO(requests []domain.Request) []RequestDTO {
	out := make([]RequestDTO, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewRequestDTO(r))
	}
	return out
}
