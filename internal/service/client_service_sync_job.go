package service

import (
	"context"
	"sync"
	"time"
)

const defaultSyncInterval = 5 * time.Minute

// clientSyncJob refreshes the note cache in the background. A failed refresh
// keeps the stale cache; the next tick tries again.
type clientSyncJob struct {
	notes ClientNoteService

	mu   sync.Mutex
	stop context.CancelFunc
	done chan struct{}
}

func NewClientSyncJob(notes ClientNoteService) ClientSyncJob {
	return &clientSyncJob{notes: notes}
}

func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	jobCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})

	j.mu.Lock()
	j.stop, j.done = stop, done
	j.mu.Unlock()

	go j.loop(jobCtx, interval, done)
}

func (j *clientSyncJob) loop(ctx context.Context, interval time.Duration, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.notes.Refresh(ctx)
		}
	}
}

func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	stop, done := j.stop, j.done
	j.stop, j.done = nil, nil
	j.mu.Unlock()

	if stop == nil {
		return
	}
	stop()
	<-done
}
