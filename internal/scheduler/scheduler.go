package scheduler

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Job is one unit of periodic work.
type Job func(ctx context.Context)

// Scheduler runs a job immediately and then again every interval, measured
// from the end of the previous run. Runs never overlap.
type Scheduler struct {
	name     string
	interval time.Duration
	job      Job

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	done     chan struct{}
}

func New(name string, interval time.Duration, job Job) *Scheduler {
	return &Scheduler{
		name:     name,
		interval: interval,
		job:      job,
	}
}

// Start launches the loop in its own goroutine. Calling Start on a running
// scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})

	log.WithFields(log.Fields{"scheduler": s.name, "interval": s.interval}).Info("Scheduler starting...")
	go s.mainLoop(ctx, s.stopChan, s.done)
}

// Stop ends the loop and waits for an in-flight run to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	done := s.done
	s.mu.Unlock()

	<-done
	log.WithField("scheduler", s.name).Info("Scheduler stopped")
}

func (s *Scheduler) mainLoop(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		s.job(ctx)

		timer := time.NewTimer(s.interval)
		select {
		case <-timer.C:
			continue
		case <-stop:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}
