package autoplay

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

var ErrAlreadyRunning = errors.New("autoplay already running")

// StepFunc performs one step. It returns done=true once there is nothing left
// to play. The context is cancelled as soon as Stop is called, so a step that
// acquires a lock should check ctx.Err() after acquiring it.
type StepFunc func(ctx context.Context) (done bool, err error)

// Player runs a StepFunc on a ticker
type Player struct {
	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	interval time.Duration
	lastErr  error
}

// NewPlayer creates an idle player
func NewPlayer() *Player {
	return &Player{}
}

// Start begins calling step every interval in a new goroutine
func (p *Player) Start(parent context.Context, interval time.Duration, step StepFunc) error {
	if interval <= 0 {
		return fmt.Errorf("autoplay interval must be positive, got %s", interval)
	}
	if step == nil {
		return fmt.Errorf("autoplay step function is required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	p.cancel = cancel
	p.done = done
	p.interval = interval
	p.lastErr = nil

	go p.run(ctx, cancel, done, interval, step)
	return nil
}

// Stop cancels the current run without waiting for it to exit.
// It reports whether a run was active.
func (p *Player) Stop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel == nil {
		return false
	}
	p.cancel()
	p.cancel = nil
	return true
}

// Running reports whether a run is active
func (p *Player) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Interval returns the interval of the most recent run
func (p *Player) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// Err returns the error that ended the most recent run, if any
func (p *Player) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Wait blocks until the most recently started run has exited
func (p *Player) Wait() {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (p *Player) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}, interval time.Duration, step StepFunc) {
	ticker := time.NewTicker(interval)
	var runErr error

	defer func() {
		ticker.Stop()
		cancel()

		p.mu.Lock()
		// A newer run may already own the player
		if p.done == done {
			p.cancel = nil
			p.lastErr = runErr
		}
		p.mu.Unlock()

		close(done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			finished, err := step(ctx)
			if err != nil {
				log.Printf("autoplay stopped: %v", err)
				runErr = err
				return
			}
			if finished {
				return
			}
		}
	}
}
