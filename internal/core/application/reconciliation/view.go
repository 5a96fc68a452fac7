// Package reconciliation keeps a local read view of the marketplace in sync
// with the remote data. Push notifications and periodic pulls both funnel
// into the same refresh path: a full fetch of deliveries, personnel and
// stats, applied atomically to the view. Notifications are treated purely as
// invalidation signals, never as state patches.
package reconciliation

import (
	"sync"
	"time"

	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/ports"
)

// View is the in-memory remote-state projection maintained by the
// Reconciler. All accessors take point-in-time copies under a read lock, so
// readers never observe a half-applied refresh.
//
// The view is deliberately separate from the local delivery store: applying
// a fetch replaces the view only, so a fetch that raced a local mutation
// can never silently revert committed local state.
type View struct {
	mu            sync.RWMutex
	deliveries    map[string]*delivery.Delivery
	couriers      map[string]*courier.Courier
	stats         ports.FleetSnapshot
	lastRefreshed time.Time
}

// NewView creates an empty view.
func NewView() *View {
	return &View{
		deliveries: make(map[string]*delivery.Delivery),
		couriers:   make(map[string]*courier.Courier),
	}
}

// Replace swaps the whole view content in one critical section.
func (v *View) Replace(
	deliveries []*delivery.Delivery,
	couriers []*courier.Courier,
	stats ports.FleetSnapshot,
	refreshedAt time.Time,
) {
	nextDeliveries := make(map[string]*delivery.Delivery, len(deliveries))
	for _, d := range deliveries {
		nextDeliveries[d.ID().String()] = d
	}

	nextCouriers := make(map[string]*courier.Courier, len(couriers))
	for _, c := range couriers {
		nextCouriers[c.ID().String()] = c
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.deliveries = nextDeliveries
	v.couriers = nextCouriers
	v.stats = stats
	v.lastRefreshed = refreshedAt
}

// Delivery returns the viewed delivery with the given id, or false.
func (v *View) Delivery(id string) (*delivery.Delivery, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	d, ok := v.deliveries[id]
	return d, ok
}

// Deliveries returns all viewed deliveries in unspecified order.
func (v *View) Deliveries() []*delivery.Delivery {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]*delivery.Delivery, 0, len(v.deliveries))
	for _, d := range v.deliveries {
		out = append(out, d)
	}
	return out
}

// Couriers returns all viewed fleet members in unspecified order.
func (v *View) Couriers() []*courier.Courier {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]*courier.Courier, 0, len(v.couriers))
	for _, c := range v.couriers {
		out = append(out, c)
	}
	return out
}

// Stats returns the viewed fleet snapshot.
func (v *View) Stats() ports.FleetSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.stats
}

// LastRefreshed returns when the view was last replaced, zero if never.
func (v *View) LastRefreshed() time.Time {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lastRefreshed
}
