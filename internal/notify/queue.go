// Package notify decouples push delivery from the state mutations that
// trigger it. Mutating operations enqueue and move on; a worker pool drains
// the queue and calls the sender. A slow or failing notification path can
// never stall or fail a job mutation.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Notification is one outbound push.
type Notification struct {
	UserID string
	Title  string
	Body   string
	Data   map[string]string
}

// Sender delivers a notification to a user's devices. Delivery is
// best-effort: the caller never observes the outcome.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

const (
	defaultQueueSize   = 1024
	defaultWorkers     = 4
	defaultSendTimeout = 10 * time.Second
)

// Queue is the outbound notification queue and its worker pool.
type Queue struct {
	sender      Sender
	logger      *slog.Logger
	ch          chan Notification
	workers     int
	sendTimeout time.Duration

	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool

	dropped atomic.Int64
}

// QueueOption configures a Queue.
type QueueOption func(*Queue)

// WithQueueSize sets the buffered queue capacity.
func WithQueueSize(n int) QueueOption {
	return func(q *Queue) { q.ch = make(chan Notification, n) }
}

// WithWorkers sets the number of delivery goroutines.
func WithWorkers(n int) QueueOption {
	return func(q *Queue) { q.workers = n }
}

// WithSendTimeout bounds a single delivery attempt.
func WithSendTimeout(d time.Duration) QueueOption {
	return func(q *Queue) { q.sendTimeout = d }
}

func NewQueue(sender Sender, logger *slog.Logger, opts ...QueueOption) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		sender:      sender,
		logger:      logger,
		ch:          make(chan Notification, defaultQueueSize),
		workers:     defaultWorkers,
		sendTimeout: defaultSendTimeout,
		stopCh:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Start launches the worker pool. Idempotent.
func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.running {
		return
	}
	q.running = true

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
}

// Stop drains nothing: queued notifications still in the channel are
// abandoned, matching the at-most-once delivery contract.
func (q *Queue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.running {
		return
	}
	q.running = false
	close(q.stopCh)
	q.wg.Wait()
}

// Notify enqueues a push without blocking. When the queue is full the
// notification is dropped and counted.
func (q *Queue) Notify(userID, title, body string, data map[string]string) {
	n := Notification{UserID: userID, Title: title, Body: body, Data: data}
	select {
	case q.ch <- n:
	default:
		q.dropped.Add(1)
		q.logger.Warn("notification dropped, queue full", slog.String("user_id", userID))
	}
}

// Dropped returns how many notifications were discarded because the queue
// was full.
func (q *Queue) Dropped() int64 { return q.dropped.Load() }

func (q *Queue) worker() {
	defer q.wg.Done()
	for {
		select {
		case n := <-q.ch:
			q.deliver(n)
		case <-q.stopCh:
			return
		}
	}
}

func (q *Queue) deliver(n Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), q.sendTimeout)
	defer cancel()

	if err := q.sender.Send(ctx, n); err != nil {
		// Swallowed at the source: delivery failures never surface as
		// operation failures.
		q.logger.Warn("notification delivery failed",
			slog.String("user_id", n.UserID),
			slog.String("error", err.Error()),
		)
	}
}
