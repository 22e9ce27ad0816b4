package requestservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sokha-dev/staffportal/internal/domain"
	"github.com/sokha-dev/staffportal/internal/filestore"
	"go.uber.org/zap"
)

//go:generate mockgen -source=requestservice.go -destination=requestservice_mock.go -package=requestservice

type Repo interface {
	Save(ctx context.Context, req *domain.Request) error
	FindByKey(ctx context.Context, key domain.RequestKey) (*domain.Request, error)
	Find(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error)
	CountPending(ctx context.Context, since time.Time) (*domain.PendingSummary, error)
	UpdateStatus(ctx context.Context, key domain.RequestKey, status domain.Status, now time.Time) error
}

type FileStore interface {
	Save(ctx context.Context, owner, original string, r io.Reader) (string, error)
	Open(name string) (io.ReadSeekCloser, error)
	Remove(name string) error
}

var (
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrForbidden       = errors.New("forbidden")
)

const claimDateLayout = "2006-01-02"

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

type Service struct {
	repo  Repo
	files FileStore
}

func New(repo Repo, files FileStore) *Service {
	return &Service{
		repo:  repo,
		files: files,
	}
}

// SubmitInput carries one claim submission. Text is the description of a
// reimbursement or the purpose of a payment.
type SubmitInput struct {
	Type     domain.RequestType
	Date     string
	Text     string
	Amount   string
	Filename string
	File     io.Reader
}

// Submit validates the claim, stores the proof blob and inserts the record.
// The blob is written first and removed again when the insert fails, so no
// stored attachment ever references a missing record.
func (s *Service) Submit(ctx context.Context, user *domain.User, in SubmitInput) (*domain.Request, error) {
	amount, err := strconv.ParseFloat(in.Amount, 64)
	if err != nil || amount <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, in.Amount)
	}
	if _, err := time.Parse(claimDateLayout, in.Date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}
	ext := strings.ToLower(filepath.Ext(in.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFileType, ext)
	}

	stored, err := s.files.Save(ctx, user.Username, in.Filename, in.File)
	if err != nil {
		zap.L().Error("can't store attachment", zap.Error(err))
		return nil, err
	}

	req := &domain.Request{
		Type:          in.Type,
		StaffName:     user.Username,
		Date:          in.Date,
		Amount:        amount,
		Status:        domain.StatusPending,
		ProofFilename: stored,
		CreatedAt:     time.Now().UTC(),
	}
	if in.Type == domain.TypePayment {
		req.Purpose = in.Text
	} else {
		req.Description = in.Text
	}

	if err := s.repo.Save(ctx, req); err != nil {
		if rmErr := s.files.Remove(stored); rmErr != nil {
			zap.L().Error("can't remove orphaned attachment", zap.String("name", stored), zap.Error(rmErr))
		}
		return nil, err
	}

	zap.L().Info("request submitted",
		zap.String("request_id", req.RequestID),
		zap.String("type", string(req.Type)),
		zap.String("staff", req.StaffName))
	return req, nil
}

// UpdateStatus resolves the identifier, applies the transition and persists it
// as one conditional update. The returned request reflects the new state.
func (s *Service) UpdateStatus(ctx context.Context, keyStr, status string) (*domain.Request, error) {
	key, err := domain.ParseRequestKey(keyStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, keyStr)
	}
	req, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, keyStr)
	}

	now := time.Now().UTC()
	if err := domain.ApplyTransition(req, domain.Status(status), now); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, key, req.Status, now); err != nil {
		return nil, err
	}

	zap.L().Info("request status updated",
		zap.String("request_id", req.RequestID),
		zap.String("status", string(req.Status)))
	return req, nil
}

// MyRequests returns the caller's requests created in the current calendar
// month (UTC).
func (s *Service) MyRequests(ctx context.Context, user *domain.User) ([]domain.Request, error) {
	return s.repo.Find(ctx, domain.RequestFilter{
		StaffName: user.Username,
		Since:     monthStart(time.Now()),
	})
}

// AdminRequests returns all requests of the current calendar month, optionally
// narrowed by type. Unknown type values are ignored rather than rejected.
func (s *Service) AdminRequests(ctx context.Context, typeFilter string) ([]domain.Request, error) {
	filter := domain.RequestFilter{Since: monthStart(time.Now())}
	if t := domain.RequestType(typeFilter); t.Valid() {
		filter.Type = t
	}
	return s.repo.Find(ctx, filter)
}

func (s *Service) PendingSummary(ctx context.Context) (*domain.PendingSummary, error) {
	return s.repo.CountPending(ctx, monthStart(time.Now()))
}

// History returns requests without a time bound: all of them for an admin,
// the caller's own for staff.
func (s *Service) History(ctx context.Context, user *domain.User) ([]domain.Request, error) {
	filter := domain.RequestFilter{}
	if user.Role == domain.RoleStaff {
		filter.StaffName = user.Username
	}
	return s.repo.Find(ctx, filter)
}

func (s *Service) PaidRecords(ctx context.Context) ([]domain.Request, error) {
	return s.repo.Find(ctx, domain.RequestFilter{Status: domain.StatusPaid})
}

// OpenAttachment serves a stored proof blob to its owning staff user or any
// admin.
func (s *Service) OpenAttachment(ctx context.Context, user *domain.User, filename string) (io.ReadSeekCloser, error) {
	matches, err := s.repo.Find(ctx, domain.RequestFilter{ProofFilename: filename})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: attachment %q", domain.ErrNotFound, filename)
	}
	if user.Role != domain.RoleAdmin && matches[0].StaffName != user.Username {
		return nil, ErrForbidden
	}

	f, err := s.files.Open(filename)
	if errors.Is(err, filestore.ErrNotFound) {
		return nil, fmt.Errorf("%w: attachment %q", domain.ErrNotFound, filename)
	}
	return f, err
}

func monthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
