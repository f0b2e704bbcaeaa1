package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	DefaultTimeout  = 5 * time.Second
	errorBufferSize = 64
)

// FailureRecorder is notified once per failed dispatch.
type FailureRecorder interface {
	NotificationFailed(event string)
}

type DispatchError struct {
	Event Event
	Err   error
}

func (e DispatchError) Error() string {
	return fmt.Sprintf("notify %s for reservation %s: %v", e.Event.Type, e.Event.ReservationID, e.Err)
}

// Dispatcher sends events on their own goroutines so that notifier latency and
// failures never reach the booking caller. Failures are written to an internal
// channel and logged by a single drain goroutine.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	logger   *slog.Logger
	failures FailureRecorder

	mu       sync.RWMutex
	closed   bool
	inflight sync.WaitGroup
	errCh    chan DispatchError
	drained  chan struct{}
}

func NewDispatcher(notifier Notifier, timeout time.Duration, logger *slog.Logger, failures FailureRecorder) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		notifier: notifier,
		timeout:  timeout,
		logger:   logger,
		failures: failures,
		errCh:    make(chan DispatchError, errorBufferSize),
		drained:  make(chan struct{}),
	}
	go d.drain()
	return d
}

// Dispatch returns immediately. The send runs with a context detached from
// ctx's cancellation and bounded by the dispatcher timeout.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("notification dropped after shutdown", "event", string(ev.Type), "reservation_id", ev.ReservationID.String())
		return
	}

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := d.send(sendCtx, ev); err != nil {
			d.report(DispatchError{Event: ev, Err: err})
		}
	}()
}

func (d *Dispatcher) send(ctx context.Context, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panic: %v", r)
		}
	}()

	switch ev.Type {
	case EventReservationCreated:
		return d.notifier.NotifyReservationCreated(ctx, ev)
	case EventStatusChanged:
		return d.notifier.NotifyStatusChanged(ctx, ev)
	case EventReservationCancelled:
		return d.notifier.NotifyReservationCancelled(ctx, ev)
	case EventPaymentRecorded:
		return d.notifier.NotifyPaymentRecorded(ctx, ev)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
}

func (d *Dispatcher) report(de DispatchError) {
	select {
	case d.errCh <- de:
	default:
		// Buffer full: log inline rather than block the sender.
		d.logFailure(de)
	}
}

func (d *Dispatcher) drain() {
	defer close(d.drained)
	for de := range d.errCh {
		d.logFailure(de)
	}
}

func (d *Dispatcher) logFailure(de DispatchError) {
	d.logger.Error("notification failed",
		"event", string(de.Event.Type),
		"reservation_id", de.Event.ReservationID.String(),
		"error", de.Err.Error())
	if d.failures != nil {
		d.failures.NotificationFailed(string(de.Event.Type))
	}
}

// Close stops accepting events, waits for in-flight sends and for the drain
// goroutine to log their failures, or until ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(d.errCh)
		<-d.drained
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
