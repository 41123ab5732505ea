package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	mu       sync.Mutex
	jobs     []uuid.UUID
	deadline bool
	block    chan struct{}
}

func (p *countingProcessor) ProcessJob(ctx context.Context, jobID uuid.UUID) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, jobID)
	if _, ok := ctx.Deadline(); ok {
		p.deadline = true
	}
	return nil
}

func (p *countingProcessor) processed() []uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uuid.UUID(nil), p.jobs...)
}

func TestQueueProcessesAllTasks(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(3), WithQueueSize(16))

	want := make([]uuid.UUID, 0, 10)
	for i := 0; i < 10; i++ {
		id := uuid.New()
		want = append(want, id)
		require.NoError(t, q.Enqueue(context.Background(), Task{JobID: id, SubmittedAt: time.Now()}))
	}

	q.Shutdown(context.Background())
	assert.ElementsMatch(t, want, proc.processed())
}

func TestQueueWorkersGetOwnDeadline(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(1), WithProcessTimeout(time.Minute))

	// Enqueue with an already-cancelled request context: the job must still
	// run, on a worker-owned context with its own deadline.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, q.Enqueue(ctx, Task{JobID: uuid.New()}))

	q.Shutdown(context.Background())
	require.Len(t, proc.processed(), 1)
	assert.True(t, proc.deadline)
}

func TestQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Task{JobID: uuid.New()}))
	assert.Empty(t, proc.processed())
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, nil, WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
