package rules

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncExecutorRunsInline(t *testing.T) {
	ran := false
	err := SyncExecutor{}.Submit(func() { ran = true })
	assert.NoError(t, err)
	assert.True(t, ran)
}

func TestSerialExecutorPreservesOrder(t *testing.T) {
	exec := NewSerialExecutor()

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 0; i < 100; i++ {
		assert.NoError(t, exec.Submit(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}
	exec.Close()

	expected := make([]int, 100)
	for i := range expected {
		expected[i] = i
	}
	assert.Equal(t, expected, order)
}

func TestSerialExecutorRunsOnOneGoroutineAtATime(t *testing.T) {
	exec := NewSerialExecutor()
	defer exec.Close()

	var (
		mu      sync.Mutex
		running int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			_ = exec.Submit(func() {
				defer wg.Done()
				mu.Lock()
				running++
				maxSeen = max(maxSeen, running)
				mu.Unlock()

				mu.Lock()
				running--
				mu.Unlock()
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestSerialExecutorClosed(t *testing.T) {
	exec := NewSerialExecutor()
	exec.Close()
	exec.Close()

	err := exec.Submit(func() {})
	assert.ErrorIs(t, err, ErrExecutorClosed)
}

func TestSerialExecutorZeroValue(t *testing.T) {
	var exec SerialExecutor

	ran := make(chan struct{})
	assert.NoError(t, exec.Submit(func() { close(ran) }))
	<-ran
	exec.Close()

	assert.ErrorIs(t, exec.Submit(func() {}), ErrExecutorClosed)

	var idle SerialExecutor
	idle.Close()
}
