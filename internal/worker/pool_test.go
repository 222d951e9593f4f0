package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/logs"
)

func TestPool_RunsEveryJobBeforeShutdownReturns(t *testing.T) {
	p := New(3, 100, logs.Discard())

	var n int32
	for i := 0; i < 50; i++ {
		require.NoError(t, p.Submit(func(ctx context.Context) {
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&n, 1)
		}))
	}

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int32(50), atomic.LoadInt32(&n))
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	p := New(1, 1, logs.Discard())
	require.NoError(t, p.Shutdown(context.Background()))

	assert.ErrorIs(t, p.Submit(func(context.Context) {}), ErrClosed)
	// second shutdown is a no-op
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestPool_QueueFull(t *testing.T) {
	p := New(1, 1, logs.Discard())
	release := make(chan struct{})
	started := make(chan struct{})

	require.NoError(t, p.Submit(func(context.Context) {
		close(started)
		<-release
	}))
	<-started
	require.NoError(t, p.Submit(func(context.Context) {}))

	assert.ErrorIs(t, p.Submit(func(context.Context) {}), ErrQueueFull)

	close(release)
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestPool_ShutdownDeadlineCancelsJobs(t *testing.T) {
	p := New(1, 1, logs.Discard())
	cancelled := make(chan struct{})

	require.NoError(t, p.Submit(func(ctx context.Context) {
		<-ctx.Done()
		close(cancelled)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Shutdown(ctx), context.DeadlineExceeded)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("job context was not cancelled")
	}
}

func TestPool_PanicDoesNotKillWorker(t *testing.T) {
	p := New(1, 2, logs.Discard())
	var ran int32

	require.NoError(t, p.Submit(func(context.Context) { panic("boom") }))
	require.NoError(t, p.Submit(func(context.Context) { atomic.StoreInt32(&ran, 1) }))

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran))
}
