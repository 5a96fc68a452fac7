package reconciliation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fleetops/internal/core/ports"
)

// defaultFetchTimeout bounds one full refresh round trip.
const defaultFetchTimeout = 15 * time.Second

// Reconciler coalesces refresh triggers into serialized view refreshes.
//
// At most one refresh is in flight at any time, with at most one more
// pending. Any number of triggers arriving while a refresh runs collapse
// into that single pending slot, so a burst of notifications costs exactly
// one extra round trip. Refreshes carry a generation number; a completed
// fetch is applied only if no newer fetch has been applied already,
// otherwise it is discarded with a log line.
//
// A failed fetch keeps the previous view: stale data over no data.
type Reconciler struct {
	gateway ports.MarketplaceGateway
	view    *View
	logger  *slog.Logger
	timeout time.Duration

	mu         sync.Mutex
	inFlight   bool
	pending    bool
	closed     bool
	generation uint64
	applied    uint64
	wg         sync.WaitGroup
}

// NewReconciler creates a reconciler over the given gateway and view.
// A non-positive timeout falls back to the default.
func NewReconciler(gateway ports.MarketplaceGateway, view *View, logger *slog.Logger, timeout time.Duration) *Reconciler {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Reconciler{
		gateway: gateway,
		view:    view,
		logger:  logger.With("component", "reconciler"),
		timeout: timeout,
	}
}

// View returns the view this reconciler maintains.
func (r *Reconciler) View() *View {
	return r.view
}

// Invalidate marks the view stale and triggers a refresh. When a refresh is
// already running the call only arms the pending slot; it never blocks.
func (r *Reconciler) Invalidate() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if r.inFlight {
		r.pending = true
		r.mu.Unlock()
		return
	}

	r.inFlight = true
	r.generation++
	gen := r.generation
	r.wg.Add(1)
	r.mu.Unlock()

	go r.refresh(gen)
}

// Handle consumes one push notification. The notification content is only
// logged; regardless of kind the reaction is the same full refresh.
func (r *Reconciler) Handle(n ports.Notification) {
	if !n.Kind.Valid() {
		r.logger.Warn("dropping notification of unknown kind", "kind", string(n.Kind))
		return
	}

	r.logger.Debug("notification received",
		"kind", string(n.Kind),
		"delivery_id", n.DeliveryID,
	)
	r.Invalidate()
}

// Close stops accepting triggers and waits for the running refresh, if any,
// to finish.
func (r *Reconciler) Close() {
	r.mu.Lock()
	r.closed = true
	r.pending = false
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Reconciler) refresh(gen uint64) {
	defer r.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	deliveries, err := r.gateway.FetchDeliveries(ctx)
	if err != nil {
		r.logger.Warn("refresh failed, keeping previous view", "error", err)
		r.finish()
		return
	}

	personnel, err := r.gateway.FetchPersonnel(ctx)
	if err != nil {
		r.logger.Warn("refresh failed, keeping previous view", "error", err)
		r.finish()
		return
	}

	stats, err := r.gateway.FetchStats(ctx)
	if err != nil {
		r.logger.Warn("refresh failed, keeping previous view", "error", err)
		r.finish()
		return
	}

	r.mu.Lock()
	if gen <= r.applied {
		applied := r.applied
		r.mu.Unlock()
		r.logger.Info("discarding stale refresh result",
			"generation", gen,
			"applied", applied,
		)
		r.finish()
		return
	}
	r.applied = gen
	r.mu.Unlock()

	r.view.Replace(deliveries, personnel, stats, time.Now().UTC())
	r.logger.Debug("view refreshed",
		"generation", gen,
		"deliveries", len(deliveries),
		"couriers", len(personnel),
	)
	r.finish()
}

// finish releases the in-flight slot and launches the pending refresh when
// one was armed while this one ran.
func (r *Reconciler) finish() {
	r.mu.Lock()
	r.inFlight = false
	again := r.pending && !r.closed
	var next uint64
	if again {
		r.pending = false
		r.inFlight = true
		r.generation++
		next = r.generation
		r.wg.Add(1)
	}
	r.mu.Unlock()

	if again {
		go r.refresh(next)
	}
}
