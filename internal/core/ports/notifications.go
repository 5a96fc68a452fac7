package ports

// NotificationKind identifies the three push-notification types the
// marketplace emits for delivery activity.
type NotificationKind string

const (
	// NotificationProductCollected signals a product was collected at the shop.
	NotificationProductCollected NotificationKind = "product_collected"
	// NotificationDeliveryReady signals a delivery finished collection and
	// is ready for pickup.
	NotificationDeliveryReady NotificationKind = "delivery_ready"
	// NotificationDeliveryCompleted signals a delivery reached a terminal state.
	NotificationDeliveryCompleted NotificationKind = "delivery_completed"
)

// Valid reports whether the kind is one of the three known notification types.
func (k NotificationKind) Valid() bool {
	switch k {
	case NotificationProductCollected, NotificationDeliveryReady, NotificationDeliveryCompleted:
		return true
	}
	return false
}

// Notification is one inbound push event. It carries no delivery payload
// beyond a human-readable message: the core treats every notification purely
// as a cache-invalidation signal ("something changed server-side, refresh"),
// never as a state patch.
type Notification struct {
	Kind       NotificationKind
	DeliveryID string
	Message    string
}

// NotificationHandler consumes inbound push notifications. Implemented by
// the reconciliation layer; called by stream adapters.
type NotificationHandler interface {
	Handle(n Notification)
}
