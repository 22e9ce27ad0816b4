package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sokha-dev/staffportal/internal/domain"
	"github.com/sokha-dev/staffportal/internal/dto"
	"github.com/sokha-dev/staffportal/internal/service/requestservice"
	pkgauth "github.com/sokha-dev/staffportal/pkg/auth"
	"github.com/sokha-dev/staffportal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RequestHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

var (
	staff = &domain.User{ID: 2, Username: "somchai", Role: domain.RoleStaff}
	admin = &domain.User{ID: 1, Username: "nou", Role: domain.RoleAdmin}
)

func withUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), pkgauth.UserKey, user))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename, content string) (io.Reader, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

type nopSeekCloser struct {
	*strings.Reader
}

func (nopSeekCloser) Close() error { return nil }

func TestSubmitReimbursement(t *testing.T) {
	fields := map[string]string{"date": "2024-05-01", "description": "train tickets", "amount": "42.50"}

	t.Run("Valid claim", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Submit(gomock.Any(), staff, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *domain.User, in requestservice.SubmitInput) (*domain.Request, error) {
				assert.Equal(t, domain.TypeReimbursement, in.Type)
				assert.Equal(t, "2024-05-01", in.Date)
				assert.Equal(t, "train tickets", in.Text)
				assert.Equal(t, "42.50", in.Amount)
				assert.Equal(t, "ticket.pdf", in.Filename)
				assert.NotNil(t, in.File)
				return &domain.Request{RequestID: "PR0007"}, nil
			})

		body, contentType := multipartBody(t, fields, "proof", "ticket.pdf", "content")
		req := withUser(httptest.NewRequest(http.MethodPost, "/submit_reimbursement", body), staff)
		req.Header.Set("Content-Type", contentType)
		resp := httptest.NewRecorder()

		handler.SubmitReimbursement(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		expected, err := json.Marshal(dto.SubmitResponseDTO{
			Message:   "Reimbursement submitted with ID: PR0007",
			RequestID: "PR0007",
		})
		assert.NoError(t, err)
		assert.JSONEq(t, string(expected), resp.Body.String())
	})

	t.Run("Missing proof file", func(t *testing.T) {
		handler, _ := NewMock(t)
		body, contentType := multipartBody(t, fields, "", "", "")
		req := withUser(httptest.NewRequest(http.MethodPost, "/submit_reimbursement", body), staff)
		req.Header.Set("Content-Type", contentType)
		resp := httptest.NewRecorder()

		handler.SubmitReimbursement(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("Not multipart", func(t *testing.T) {
		handler, _ := NewMock(t)
		req := withUser(httptest.NewRequest(http.MethodPost, "/submit_reimbursement", strings.NewReader("date=2024-05-01")), staff)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp := httptest.NewRecorder()

		handler.SubmitReimbursement(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("Validation errors map to 400", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			msg  string
		}{
			{"Bad amount", requestservice.ErrInvalidAmount, "Amount must be a positive number"},
			{"Bad date", requestservice.ErrInvalidDate, "Date must be YYYY-MM-DD"},
			{"Bad extension", requestservice.ErrInvalidFileType, "Invalid file type"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				handler, service := NewMock(t)
				service.EXPECT().Submit(gomock.Any(), staff, gomock.Any()).Return(nil, tc.err)

				body, contentType := multipartBody(t, fields, "proof", "ticket.pdf", "content")
				req := withUser(httptest.NewRequest(http.MethodPost, "/submit_reimbursement", body), staff)
				req.Header.Set("Content-Type", contentType)
				resp := httptest.NewRecorder()

				handler.SubmitReimbursement(resp, req)

				assert.Equal(t, http.StatusBadRequest, resp.Code)
				expected, err := json.Marshal(utils.Response{Message: tc.msg})
				assert.NoError(t, err)
				assert.JSONEq(t, string(expected), resp.Body.String())
			})
		}
	})

	t.Run("Storage failure", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Submit(gomock.Any(), staff, gomock.Any()).Return(nil, errors.New("database error"))

		body, contentType := multipartBody(t, fields, "proof", "ticket.pdf", "content")
		req := withUser(httptest.NewRequest(http.MethodPost, "/submit_reimbursement", body), staff)
		req.Header.Set("Content-Type", contentType)
		resp := httptest.NewRecorder()

		handler.SubmitReimbursement(resp, req)

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestSubmitPayment(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Submit(gomock.Any(), staff, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *domain.User, in requestservice.SubmitInput) (*domain.Request, error) {
			assert.Equal(t, domain.TypePayment, in.Type)
			assert.Equal(t, "vendor invoice", in.Text)
			assert.Equal(t, "invoice.png", in.Filename)
			return &domain.Request{RequestID: "PR0008"}, nil
		})

	fields := map[string]string{"date": "2024-05-02", "purpose": "vendor invoice", "amount": "100"}
	body, contentType := multipartBody(t, fields, "proof", "invoice.png", "content")
	req := withUser(httptest.NewRequest(http.MethodPost, "/submit_payment", body), staff)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()

	handler.SubmitPayment(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	expected, err := json.Marshal(dto.SubmitResponseDTO{
		Message:   "Payment request submitted with ID: PR0008",
		RequestID: "PR0008",
	})
	assert.NoError(t, err)
	assert.JSONEq(t, string(expected), resp.Body.String())
}

func TestMyRequests(t *testing.T) {
	t.Run("Returns the caller's month", func(t *testing.T) {
		handler, service := NewMock(t)
		recs := []domain.Request{{ID: 1, RequestID: "PR0001", Type: domain.TypeReimbursement, StaffName: "somchai", Status: domain.StatusPending}}
		service.EXPECT().MyRequests(gomock.Any(), staff).Return(recs, nil)

		req := withUser(httptest.NewRequest(http.MethodGet, "/my_requests", nil), staff)
		resp := httptest.NewRecorder()
		handler.MyRequests(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		expected, err := json.Marshal(dto.NewRequestListDTO(recs))
		assert.NoError(t, err)
		assert.JSONEq(t, string(expected), resp.Body.String())
	})

	t.Run("Storage failure", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().MyRequests(gomock.Any(), staff).Return(nil, errors.New("database error"))

		req := withUser(httptest.NewRequest(http.MethodGet, "/my_requests", nil), staff)
		resp := httptest.NewRecorder()
		handler.MyRequests(resp, req)

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestAdminRequests(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().AdminRequests(gomock.Any(), "payment").Return([]domain.Request{}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/admin/requests?type=payment", nil), admin)
	resp := httptest.NewRecorder()
	handler.AdminRequests(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestPendingSummary(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().PendingSummary(gomock.Any()).Return(&domain.PendingSummary{ReimbursementPending: 3, PaymentPending: 1}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/admin/pending_summary", nil), admin)
	resp := httptest.NewRecorder()
	handler.PendingSummary(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"reimbursement_pending":3,"payment_pending":1}`, resp.Body.String())
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name           string
		key            string
		body           string
		prepareMock    func(m *MockService)
		expectedStatus int
		expectedBody   utils.Response
	}{
		{
			name: "Approve by public id",
			key:  "PR0001",
			body: `{"status":"Approved"}`,
			prepareMock: func(m *MockService) {
				m.EXPECT().UpdateStatus(gomock.Any(), "PR0001", "Approved").
					Return(&domain.Request{RequestID: "PR0001", Status: domain.StatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   utils.Response{Message: "Status updated to Approved"},
		},
		{
			name:           "Malformed body",
			key:            "PR0001",
			body:           `{`,
			prepareMock:    func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   utils.Response{Message: "Invalid request body"},
		},
		{
			name: "Invalid status",
			key:  "PR0001",
			body: `{"status":"Bogus"}`,
			prepareMock: func(m *MockService) {
				m.EXPECT().UpdateStatus(gomock.Any(), "PR0001", "Bogus").Return(nil, domain.ErrInvalidStatus)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   utils.Response{Message: "Invalid status"},
		},
		{
			name: "Unknown request",
			key:  "PR9999",
			body: `{"status":"Approved"}`,
			prepareMock: func(m *MockService) {
				m.EXPECT().UpdateStatus(gomock.Any(), "PR9999", "Approved").Return(nil, domain.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   utils.Response{Message: "Request ID not found"},
		},
		{
			name: "Storage failure",
			key:  "PR0001",
			body: `{"status":"Approved"}`,
			prepareMock: func(m *MockService) {
				m.EXPECT().UpdateStatus(gomock.Any(), "PR0001", "Approved").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   utils.Response{Message: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPatch, "/admin/requests/"+tt.key, strings.NewReader(tt.body))
			req = withURLParam(withUser(req, admin), "id", tt.key)
			resp := httptest.NewRecorder()

			handler.UpdateStatus(resp, req)

			assert.Equal(t, tt.expectedStatus, resp.Code)
			expected, err := json.Marshal(tt.expectedBody)
			assert.NoError(t, err)
			assert.JSONEq(t, string(expected), resp.Body.String())
		})
	}
}

func TestHistory(t *testing.T) {
	handler, service := NewMock(t)
	created := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	recs := []domain.Request{{ID: 3, RequestID: "PR0003", StaffName: "somchai", Status: domain.StatusPaid, CreatedAt: created}}
	service.EXPECT().History(gomock.Any(), staff).Return(recs, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/history_requests", nil), staff)
	resp := httptest.NewRecorder()
	handler.History(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	expected, err := json.Marshal(dto.NewRequestListDTO(recs))
	assert.NoError(t, err)
	assert.JSONEq(t, string(expected), resp.Body.String())
}

func TestPaidRecords(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().PaidRecords(gomock.Any()).Return([]domain.Request{}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/admin/paid_records", nil), admin)
	resp := httptest.NewRecorder()
	handler.PaidRecords(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestAttachment(t *testing.T) {
	tests := []struct {
		name           string
		user           *domain.User
		prepareMock    func(m *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Owner downloads the blob",
			user: staff,
			prepareMock: func(m *MockService) {
				m.EXPECT().OpenAttachment(gomock.Any(), staff, "somchai_abc_ticket.pdf").
					Return(nopSeekCloser{strings.NewReader("pdf-bytes")}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "pdf-bytes",
		},
		{
			name: "Other staff is rejected",
			user: &domain.User{Username: "else", Role: domain.RoleStaff},
			prepareMock: func(m *MockService) {
				m.EXPECT().OpenAttachment(gomock.Any(), gomock.Any(), "somchai_abc_ticket.pdf").
					Return(nil, requestservice.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Unknown attachment",
			user: staff,
			prepareMock: func(m *MockService) {
				m.EXPECT().OpenAttachment(gomock.Any(), staff, "somchai_abc_ticket.pdf").
					Return(nil, domain.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Blob store failure",
			user: staff,
			prepareMock: func(m *MockService) {
				m.EXPECT().OpenAttachment(gomock.Any(), staff, "somchai_abc_ticket.pdf").
					Return(nil, errors.New("disk error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodGet, "/attachments/somchai_abc_ticket.pdf", nil)
			req = withURLParam(withUser(req, tt.user), "filename", "somchai_abc_ticket.pdf")
			resp := httptest.NewRecorder()

			handler.Attachment(resp, req)

			assert.Equal(t, tt.expectedStatus, resp.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, resp.Body.String())
			}
		})
	}
}
