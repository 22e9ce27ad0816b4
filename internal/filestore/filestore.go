package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("attachment not found")

// Entry describes one stored blob.
type Entry struct {
	Name    string
	ModTime time.Time
}

// Disk stores attachment blobs as flat files under a single directory. Stored
// names carry the owner, a random token and the sanitized original name, so
// they never collide and never escape the directory.
type Disk struct {
	dir string
}

func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create upload directory: %w", err)
	}
	return &Disk{dir: dir}, nil
}

// sanitizeName keeps letters, digits and a few separator characters of the
// client-supplied filename and drops everything else.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == '-' || c == '_' || c == '.' || c == ' ':
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Save writes the blob and returns its stored name. A failed write leaves no
// partial file behind.
func (d *Disk) Save(ctx context.Context, owner, original string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s_%s", owner, uuid.NewString(), sanitizeName(original))
	path := filepath.Join(d.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("can't create attachment file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			zap.L().Error("can't remove partial attachment", zap.String("name", name), zap.Error(rmErr))
		}
		return "", fmt.Errorf("can't write attachment file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("can't close attachment file: %w", err)
	}
	return name, nil
}

func (d *Disk) path(name string) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", ErrNotFound
	}
	return filepath.Join(d.dir, name), nil
}

func (d *Disk) Open(name string) (io.ReadSeekCloser, error) {
	path, err := d.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return f, err
}

func (d *Disk) Remove(name string) error {
	path, err := d.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (d *Disk) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Name: de.Name(), ModTime: info.ModTime()})
	}
	return entries, nil
}
