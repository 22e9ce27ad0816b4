package janitor

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	t.Run("Runs every queued task", func(t *testing.T) {
		wp := NewWorkerPool(2)
		defer wp.Close()

		var mu sync.Mutex
		var executed int
		var wg sync.WaitGroup

		for i := 0; i < 5; i++ {
			wg.Add(1)
			err := wp.AddTask(context.Background(), func() error {
				defer wg.Done()
				mu.Lock()
				executed++
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}
		wg.Wait()

		assert.Equal(t, 5, executed)
	})

	t.Run("Task errors do not stop the workers", func(t *testing.T) {
		wp := NewWorkerPool(1)
		defer wp.Close()

		var wg sync.WaitGroup
		wg.Add(2)
		assert.NoError(t, wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			return assert.AnError
		}))

		var ran bool
		assert.NoError(t, wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			ran = true
			return nil
		}))
		wg.Wait()

		assert.True(t, ran)
	})

	t.Run("Canceled context rejects new tasks", func(t *testing.T) {
		wp := NewWorkerPool(0)
		defer wp.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := wp.AddTask(ctx, func() error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}
