// Package generation turns a submitted vibe into a ready style after a
// simulated latency.
//
// Only the most recent request may ever reach Ready. Every request takes a new
// token; a completion compares its token with the latest one under the
// controller lock and drops itself when they differ, so completions of
// superseded requests are harmless no matter when their timers fire.
package generation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ava-vibe/ava/log"
	"github.com/ava-vibe/ava/vibe"
	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
)

// DefaultLatency is the simulated generation time.
const DefaultLatency = 2 * time.Second

var (
	ErrClosed    = errors.New("generation controller is closed")
	ErrCancelled = errors.New("generation request was cancelled")
	ErrIdle      = errors.New("no generation request in flight")
)

// State of the controller.
type State int

const (
	Idle State = iota
	Pending
	Ready
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Job is one accepted request.
type Job struct {
	Token       uint64
	ID          uuid.UUID
	Vibe        string
	RequestedAt time.Time
}

// Snapshot is a consistent view of the controller.
type Snapshot struct {
	State State
	Job   mo.Option[Job]
	Style mo.Option[vibe.Style]
}

// Options configures a Controller. A nil Options uses the defaults.
type Options struct {
	Latency   time.Duration
	Scheduler Scheduler
	Now       func() time.Time
}

// Controller runs the idle, pending and ready lifecycle.
type Controller struct {
	mu        sync.Mutex
	latency   time.Duration
	scheduler Scheduler
	now       func() time.Time

	state   State
	token   uint64
	job     mo.Option[Job]
	style   mo.Option[vibe.Style]
	ticket  Ticket
	closed  bool
	changed chan struct{}

	// waiting runs under the lock each time Await is about to block.
	waiting func()
}

// New returns an idle controller.
func New(options *Options) *Controller {
	if options == nil {
		options = &Options{Latency: DefaultLatency}
	}

	c := &Controller{
		latency:   options.Latency,
		scheduler: options.Scheduler,
		now:       options.Now,
		changed:   make(chan struct{}),
	}

	if c.latency < 0 {
		c.latency = 0
	}
	if c.scheduler == nil {
		c.scheduler = TimerScheduler{}
	}
	if c.now == nil {
		c.now = time.Now
	}

	return c
}

// SetLatency changes the latency for future requests.
func (c *Controller) SetLatency(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d < 0 {
		d = 0
	}
	c.latency = d
}

// Request submits a vibe. Blank text and a closed controller leave state
// unchanged and report false. Otherwise any previous request is superseded.
func (c *Controller) Request(text string) (Job, bool) {
	if strings.TrimSpace(text) == "" {
		return Job{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Job{}, false
	}

	c.cancelTicket()
	c.token++

	job := Job{
		Token:       c.token,
		ID:          uuid.New(),
		Vibe:        text,
		RequestedAt: c.now(),
	}

	c.job = mo.Some(job)
	c.style = mo.None[vibe.Style]()
	c.state = Pending
	c.ticket = c.scheduler.Schedule(c.latency, func() { c.complete(job) })

	log.WithFields(logrus.Fields{
		"job":     job.ID,
		"token":   job.Token,
		"latency": c.latency,
	}).Info("generation requested")

	c.broadcast()
	return job, true
}

func (c *Controller) complete(job Job) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fields := logrus.Fields{"job": job.ID, "token": job.Token}

	if c.closed || job.Token != c.token || c.state != Pending {
		log.WithFields(fields).Debug("dropping stale completion")
		return
	}

	style := vibe.Synthesize(job.Vibe)
	c.style = mo.Some(style)
	c.state = Ready
	c.ticket = nil

	log.WithFields(fields).Infof("generation ready: %s", style.Title)
	c.broadcast()
}

// Cancel abandons a pending request. It reports whether there was one.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.state != Pending {
		return false
	}

	c.cancelTicket()
	c.token++
	c.state = Idle
	c.job = mo.None[Job]()
	c.broadcast()
	return true
}

// Clear drops a ready style. It reports whether there was one.
func (c *Controller) Clear() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.state != Ready {
		return false
	}

	c.state = Idle
	c.job = mo.None[Job]()
	c.style = mo.None[vibe.Style]()
	c.broadcast()
	return true
}

// Close stops the controller. A pending request is abandoned and the
// controller ends Idle. Calling Close more than once is safe.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.cancelTicket()
	c.token++
	c.closed = true
	if c.state == Pending {
		c.state = Idle
		c.job = mo.None[Job]()
	}
	c.broadcast()
}

// Closed reports whether Close was called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		State: c.state,
		Job:   c.job,
		Style: c.style,
	}
}

// Changed returns a channel that is closed on the next state transition.
// Call it again after each receive.
func (c *Controller) Changed() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.changed
}

// Await blocks until the request in flight is ready. It fails with ErrIdle when
// nothing was requested, ErrCancelled when the request was cancelled or cleared,
// ErrClosed on Close, or the context error.
func (c *Controller) Await(ctx context.Context) (vibe.Style, error) {
	c.mu.Lock()
	if !c.closed && c.state == Idle {
		c.mu.Unlock()
		return vibe.Style{}, ErrIdle
	}

	for {
		if c.closed {
			c.mu.Unlock()
			return vibe.Style{}, ErrClosed
		}

		switch c.state {
		case Ready:
			style := c.style.MustGet()
			c.mu.Unlock()
			return style, nil
		case Idle:
			c.mu.Unlock()
			return vibe.Style{}, ErrCancelled
		}

		if c.waiting != nil {
			c.waiting()
		}
		changed := c.changed
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			return vibe.Style{}, ctx.Err()
		case <-changed:
		}

		c.mu.Lock()
	}
}

func (c *Controller) cancelTicket() {
	if c.ticket != nil {
		c.ticket.Cancel()
		c.ticket = nil
	}
}

// broadcast must be called with the lock held.
func (c *Controller) broadcast() {
	close(c.changed)
	c.changed = make(chan struct{})
}
