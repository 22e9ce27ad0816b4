package janitor

import (
	"context"
	"sync"
	"time"

	"github.com/sokha-dev/staffportal/internal/filestore"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=janitor.go -destination=janitor_mock.go -package=janitor

// gracePeriod keeps blobs that were written moments ago: their request row
// may still be inside the insert transaction.
const gracePeriod = 10 * time.Minute

type FileIndex interface {
	List() ([]filestore.Entry, error)
	Remove(name string) error
}

type ProofIndex interface {
	ProofExists(ctx context.Context, filename string) (bool, error)
}

var sweepingBlobs sync.Map

// Service periodically removes attachment blobs that no request row
// references. Such blobs appear when the process dies between writing the
// file and committing the insert.
type Service struct {
	files      FileIndex
	proofs     ProofIndex
	workerPool WorkerPoolI
	interval   time.Duration
}

func New(files FileIndex, proofs ProofIndex, interval time.Duration) *Service {
	return &Service{
		files:      files,
		proofs:     proofs,
		workerPool: NewWorkerPool(4),
		interval:   interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Attachment janitor started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping janitor")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep walks the upload directory once and deletes every blob old enough
// to be past the grace period that no request references.
func (s *Service) Sweep(ctx context.Context) {
	entries, err := s.files.List()
	if err != nil {
		zap.L().Error("Failed to list upload directory", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-gracePeriod)

	var g errgroup.Group
	for _, entry := range entries {
		entry := entry
		if entry.ModTime.After(cutoff) {
			continue
		}
		if _, loaded := sweepingBlobs.LoadOrStore(entry.Name, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingBlobs.Delete(entry.Name)
				return s.sweepBlob(ctx, entry.Name)
			})
			if err != nil {
				sweepingBlobs.Delete(entry.Name)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping attachments", zap.Error(err))
	}
}

func (s *Service) sweepBlob(ctx context.Context, name string) error {
	exists, err := s.proofs.ProofExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := s.files.Remove(name); err != nil {
		return err
	}
	zap.L().Info("Removed orphaned attachment", zap.String("filename", name))
	return nil
}
