package requests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sokha-dev/staffportal/internal/domain"
	"github.com/sokha-dev/staffportal/internal/dto"
	"github.com/sokha-dev/staffportal/internal/service/requestservice"
	pkgauth "github.com/sokha-dev/staffportal/pkg/auth"
	"github.com/sokha-dev/staffportal/pkg/utils"
)

//go:generate mockgen -source=requests.go -destination=requests_mock.go -package=requests

// maxUploadSize bounds how much of a multipart body is buffered in memory.
const maxUploadSize = 32 << 20

type Service interface {
	Submit(ctx context.Context, user *domain.User, in requestservice.SubmitInput) (*domain.Request, error)
	UpdateStatus(ctx context.Context, key, status string) (*domain.Request, error)
	MyRequests(ctx context.Context, user *domain.User) ([]domain.Request, error)
	AdminRequests(ctx context.Context, typeFilter string) ([]domain.Request, error)
	PendingSummary(ctx context.Context) (*domain.PendingSummary, error)
	History(ctx context.Context, user *domain.User) ([]domain.Request, error)
	PaidRecords(ctx context.Context) ([]domain.Request, error)
	OpenAttachment(ctx context.Context, user *domain.User, filename string) (io.ReadSeekCloser, error)
}

type RequestHandler struct {
	requestService Service
}

func New(requestService Service) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// SubmitReimbursement godoc
//
//	@Summary		Submit a reimbursement claim
//	@Description	Multipart form with date, description, amount and a proof file (staff only)
//	@Tags			Requests
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			date		formData	string	true	"Claim date, YYYY-MM-DD"
//	@Param			description	formData	string	true	"What the money was spent on"
//	@Param			amount		formData	string	true	"Positive amount"
//	@Param			proof		formData	file	true	"Receipt: pdf, jpg, jpeg or png"
//	@Success		200			{object}	dto.SubmitResponseDTO
//	@Failure		400			{object}	utils.Response	"Validation failure"
//	@Failure		401			{object}	utils.Response	"Unauthorized"
//	@Failure		403			{object}	utils.Response	"Staff only"
//	@Failure		500			{object}	utils.Response	"File upload failed"
//	@Security		BearerAuth
//	@Router			/submit_reimbursement [post]
func (h *RequestHandler) SubmitReimbursement(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.TypeReimbursement, "description")
}

// SubmitPayment godoc
//
//	@Summary		Submit a payment request
//	@Description	Multipart form with date, purpose, amount and a proof file (staff only)
//	@Tags			Requests
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			date	formData	string	true	"Claim date, YYYY-MM-DD"
//	@Param			purpose	formData	string	true	"What the payment is for"
//	@Param			amount	formData	string	true	"Positive amount"
//	@Param			proof	formData	file	true	"Invoice: pdf, jpg, jpeg or png"
//	@Success		200		{object}	dto.SubmitResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation failure"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Staff only"
//	@Failure		500		{object}	utils.Response	"File upload failed"
//	@Security		BearerAuth
//	@Router			/submit_payment [post]
func (h *RequestHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.TypePayment, "purpose")
}

func (h *RequestHandler) submit(w http.ResponseWriter, r *http.Request, reqType domain.RequestType, textField string) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("proof")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Proof file is required")
		return
	}
	defer file.Close()

	user := pkgauth.CurrentUser(r.Context())
	req, err := h.requestService.Submit(r.Context(), user, requestservice.SubmitInput{
		Type:     reqType,
		Date:     r.FormValue("date"),
		Text:     r.FormValue(textField),
		Amount:   r.FormValue("amount"),
		Filename: header.Filename,
		File:     file,
	})
	switch {
	case errors.Is(err, requestservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be a positive number")
	case errors.Is(err, requestservice.ErrInvalidDate):
		utils.RespondWithError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD")
	case errors.Is(err, requestservice.ErrInvalidFileType):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid file type")
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "File upload failed")
	default:
		label := "Reimbursement"
		if reqType == domain.TypePayment {
			label = "Payment request"
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.SubmitResponseDTO{
			Message:   fmt.Sprintf("%s submitted with ID: %s", label, req.RequestID),
			RequestID: req.RequestID,
		})
	}
}

// MyRequests godoc
//
//	@Summary		Current month requests of the caller
//	@Tags			Requests
//	@Produce		json
//	@Success		200	{array}		dto.RequestDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Staff only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/my_requests [get]
func (h *RequestHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	user := pkgauth.CurrentUser(r.Context())
	recs, err := h.requestService.MyRequests(r.Context(), user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRequestListDTO(recs))
}

// AdminRequests godoc
//
//	@Summary		Current month requests across all staff
//	@Description	Optionally narrowed with ?type=reimbursement or ?type=payment (admin only)
//	@Tags			Requests
//	@Produce		json
//	@Param			type	query		string	false	"Request type filter"
//	@Success		200		{array}		dto.RequestDTO
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Admins only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/requests [get]
func (h *RequestHandler) AdminRequests(w http.ResponseWriter, r *http.Request) {
	recs, err := h.requestService.AdminRequests(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRequestListDTO(recs))
}

// PendingSummary godoc
//
//	@Summary		Pending counts per request type for the current month
//	@Tags			Requests
//	@Produce		json
//	@Success		200	{object}	dto.PendingSummaryDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Admins only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/pending_summary [get]
func (h *RequestHandler) PendingSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.requestService.PendingSummary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PendingSummaryDTO{
		ReimbursementPending: summary.ReimbursementPending,
		PaymentPending:       summary.PaymentPending,
	})
}

// UpdateStatus godoc
//
//	@Summary		Change a request's status
//	@Description	Accepts the public PRxxxx identifier or the internal numeric id (admin only)
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Request identifier"
//	@Param			request	body		dto.UpdateStatusRequestDTO	true	"New status"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Admins only"
//	@Failure		404		{object}	utils.Response	"Request ID not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/requests/{id} [patch]
func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := h.requestService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), body.Status)
	switch {
	case errors.Is(err, domain.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Request ID not found")
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	default:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{
			Message: fmt.Sprintf("Status updated to %s", req.Status),
		})
	}
}

// History godoc
//
//	@Summary		Full request history
//	@Description	Staff see their own requests, admins see everything; no time bound
//	@Tags			Requests
//	@Produce		json
//	@Success		200	{array}		dto.RequestDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/history_requests [get]
func (h *RequestHandler) History(w http.ResponseWriter, r *http.Request) {
	user := pkgauth.CurrentUser(r.Context())
	recs, err := h.requestService.History(r.Context(), user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRequestListDTO(recs))
}

// PaidRecords godoc
//
//	@Summary		Every request that reached the Paid status
//	@Tags			Requests
//	@Produce		json
//	@Success		200	{array}		dto.RequestDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Admins only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/paid_records [get]
func (h *RequestHandler) PaidRecords(w http.ResponseWriter, r *http.Request) {
	recs, err := h.requestService.PaidRecords(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRequestListDTO(recs))
}

// Attachment godoc
//
//	@Summary		Download a proof attachment
//	@Description	Readable by the owning staff account or any admin; token may be passed as ?token= for inline previews
//	@Tags			Requests
//	@Produce		octet-stream
//	@Param			filename	path	string	true	"Stored attachment name"
//	@Param			token		query	string	false	"Access token"
//	@Success		200
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Attachment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/attachments/{filename} [get]
func (h *RequestHandler) Attachment(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	user := pkgauth.CurrentUser(r.Context())

	f, err := h.requestService.OpenAttachment(r.Context(), user, filename)
	switch {
	case errors.Is(err, requestservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Attachment not found")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer f.Close()

	http.ServeContent(w, r, filename, time.Time{}, f)
}
