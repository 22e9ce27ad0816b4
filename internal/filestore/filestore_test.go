package filestore

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisk_SaveAndOpen(t *testing.T) {
	store, err := NewDisk(t.TempDir())
	assert.NoError(t, err)

	name, err := store.Save(context.Background(), "someone", "my receipt (1).pdf", strings.NewReader("content"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "someone_"))
	assert.True(t, strings.HasSuffix(name, "my receipt 1.pdf"))
	assert.NotContains(t, name, "(")

	f, err := store.Open(name)
	assert.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	assert.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestDisk_SaveUniqueNames(t *testing.T) {
	store, err := NewDisk(t.TempDir())
	assert.NoError(t, err)

	first, err := store.Save(context.Background(), "someone", "a.pdf", strings.NewReader("x"))
	assert.NoError(t, err)
	second, err := store.Save(context.Background(), "someone", "a.pdf", strings.NewReader("y"))
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDisk_SaveCancelledContext(t *testing.T) {
	store, err := NewDisk(t.TempDir())
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Save(ctx, "someone", "a.pdf", strings.NewReader("x"))
	assert.Error(t, err)

	entries, err := store.List()
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDisk_OpenRejectsTraversal(t *testing.T) {
	store, err := NewDisk(t.TempDir())
	assert.NoError(t, err)

	_, err = store.Open("../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Open("missing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDisk_RemoveAndList(t *testing.T) {
	store, err := NewDisk(t.TempDir())
	assert.NoError(t, err)

	name, err := store.Save(context.Background(), "someone", "a.pdf", strings.NewReader("x"))
	assert.NoError(t, err)

	entries, err := store.List()
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, name, entries[0].Name)

	assert.NoError(t, store.Remove(name))
	// Removing twice is not an error.
	assert.NoError(t, store.Remove(name))

	entries, err = store.List()
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
