package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testJob struct {
	executed *int32
	err      error
	delay    time.Duration
}

func (j *testJob) Process(ctx context.Context) error {
	time.Sleep(j.delay)
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	pool.Stop()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_StopDrainsQueue(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()

	for i := 0; i < 5; i++ {
		assert.True(t, pool.Enqueue(&testJob{executed: &executed, delay: 5 * time.Millisecond}))
	}

	pool.Stop()

	assert.Equal(t, int32(5), atomic.LoadInt32(&executed))
}

func TestPool_EnqueueNeverBlocks(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)
	// Not started: the single slot fills and the next enqueue is refused

	assert.True(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))

	pool.Start()
	pool.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	pool.Stop()
	pool.Stop()

	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.Zero(t, atomic.LoadInt32(&executed))
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()

	pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")})
	pool.Enqueue(&testJob{executed: &executed})

	pool.Stop()

	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
}
