package delivery

import (
	"errors"
	"fmt"
	"math"
	"time"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

// Domain errors for delivery operations.
var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrInvalidState is the sentinel for operations attempted on a delivery
	// whose terminal status forbids them (e.g. reassigning a delivered delivery).
	ErrInvalidState = errors.New("operation not permitted in terminal status")

	// ErrInvalidTimeline is returned when the delivered/picked-up/assigned
	// timestamps would violate their required ordering.
	ErrInvalidTimeline = errors.New("delivery timeline is out of order")

	// ErrValidationCodeIsRequired is returned when completing a delivery
	// without the handoff validation code.
	ErrValidationCodeIsRequired = errs.NewValueIsRequiredError("validation code")

	// ErrFailureReasonIsRequired is returned when failing a delivery without
	// an audit reason code.
	ErrFailureReasonIsRequired = errs.NewValueIsRequiredError("failure reason")
)

// ErrOverCollection is the sentinel for collection recordings that would
// push collected products past the delivery total.
var ErrOverCollection = errors.New("collected products would exceed total")

// OverCollectionError reports a rejected collection recording together with
// the counter values at the time of the attempt.
type OverCollectionError struct {
	Collected int
	Total     int
}

// NewOverCollectionError creates an OverCollectionError for the given counters.
func NewOverCollectionError(collected, total int) *OverCollectionError {
	return &OverCollectionError{Collected: collected, Total: total}
}

// Error implements the error interface.
func (e *OverCollectionError) Error() string {
	return fmt.Sprintf("%s: %d of %d already collected", ErrOverCollection, e.Collected, e.Total)
}

// Unwrap returns the sentinel ErrOverCollection so errors.Is can classify this error.
func (e *OverCollectionError) Unwrap() error {
	return ErrOverCollection
}

// OrderSnapshot is the denormalized order/buyer/shop projection carried on a
// delivery for display. It is read-only from the core's point of view and is
// refreshed wholesale when the owning order changes upstream.
type OrderSnapshot struct {
	BuyerName       string
	BuyerPhone      string
	ShopName        string
	OrderTotalCents int64
	ShippingAddress string
}

// Delivery represents one active shipment for one order. It is the aggregate
// root that owns the delivery lifecycle from assignment through pickup and
// transit to completion or failure.
//
// Delivery maintains these invariants:
//   - References exactly one order and exactly one responsible courier
//   - 0 <= collected products <= total products at all times
//   - Status moves only along the transitions defined by Status
//   - Picked-up and delivered timestamps are set at most once and never
//     precede the assignment timestamp
//   - Can only be created through NewDelivery or RestoreDelivery
//
// Progress is derived from the collection counters and is never settable on
// its own.
type Delivery struct {
	// id is the unique identifier of the delivery
	id kernel.UUID

	// orderID references the single order this delivery fulfills
	orderID kernel.UUID

	// courierID is the courier currently responsible; reassignment overwrites it
	courierID kernel.UUID

	// status is the current lifecycle state
	status Status

	// totalProducts is the number of products the order contains
	totalProducts int

	// collectedProducts counts products physically collected at the shop
	collectedProducts int

	// assignedAt is set once, at creation
	assignedAt time.Time

	// pickedUpAt is set by the transition into PickedUp
	pickedUpAt *time.Time

	// deliveredAt is set by the transition into Delivered
	deliveredAt *time.Time

	// validationCode is the opaque token proving recipient handoff
	validationCode string

	// failureReason is the audit reason recorded by the transition into Failed
	failureReason string

	// snapshot is the denormalized order/buyer/shop projection for display
	snapshot OrderSnapshot

	// guard ensures the delivery was created via a constructor
	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery for an order that has just been handed to
// fulfillment. The delivery starts in Assigned status with the given courier
// responsible and the assignment timestamp set to now.
//
// Parameters:
//   - id: unique delivery identifier
//   - orderID: the order being fulfilled (1:1)
//   - courierID: the courier initially responsible
//   - totalProducts: number of products to collect (must not be negative)
//   - snapshot: denormalized order/buyer/shop projection
//
// Returns a validation error if any identifier is invalid or totalProducts
// is negative.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID kernel.UUID,
	totalProducts int,
	snapshot OrderSnapshot,
) (*Delivery, error) {
	d := &Delivery{
		status:     Assigned,
		assignedAt: time.Now().UTC(),
		snapshot:   snapshot,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setCourierID(courierID),
		d.setTotalProducts(totalProducts),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistence or from
// a reconciliation fetch. Unlike NewDelivery it restores the full previously
// observed state, including counters, timestamps and terminal statuses. The
// restored delivery behaves identically to one built through domain
// operations.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID kernel.UUID,
	status Status,
	totalProducts int,
	collectedProducts int,
	assignedAt time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
	validationCode string,
	failureReason string,
	snapshot OrderSnapshot,
) (*Delivery, error) {
	d := &Delivery{
		assignedAt:     assignedAt,
		pickedUpAt:     pickedUpAt,
		deliveredAt:    deliveredAt,
		validationCode: validationCode,
		failureReason:  failureReason,
		snapshot:       snapshot,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setCourierID(courierID),
		d.setStatus(status),
		d.setTotalProducts(totalProducts),
		d.setCollectedProducts(collectedProducts),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was constructed through NewDelivery or
// RestoreDelivery. Call it when reconstructing deliveries from outside.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order this delivery fulfills.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Courier returns the identifier of the currently responsible courier.
func (d *Delivery) Courier() kernel.UUID {
	return d.courierID
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// TotalProducts returns the number of products the order contains.
func (d *Delivery) TotalProducts() int {
	return d.totalProducts
}

// CollectedProducts returns the number of products collected so far.
func (d *Delivery) CollectedProducts() int {
	return d.collectedProducts
}

// Progress returns the collection progress as an integer percentage:
// round(100 * collected / total), or 0 when the delivery has no products.
func (d *Delivery) Progress() int {
	if d.totalProducts == 0 {
		return 0
	}
	return int(math.Round(100 * float64(d.collectedProducts) / float64(d.totalProducts)))
}

// AssignedAt returns the time the delivery was created and first assigned.
func (d *Delivery) AssignedAt() time.Time {
	return d.assignedAt
}

// PickedUpAt returns the pickup time, or nil if pickup has not happened.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns the completion time, or nil if not delivered.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// ValidationCode returns the handoff token supplied at completion.
func (d *Delivery) ValidationCode() string {
	return d.validationCode
}

// FailureReason returns the audit reason recorded when the delivery failed.
func (d *Delivery) FailureReason() string {
	return d.failureReason
}

// Snapshot returns the denormalized order/buyer/shop projection.
func (d *Delivery) Snapshot() OrderSnapshot {
	return d.snapshot
}

// RefreshSnapshot replaces the denormalized order projection. Called when a
// reconciliation fetch reports that the owning order changed upstream; the
// core never edits individual snapshot fields.
func (d *Delivery) RefreshSnapshot(snapshot OrderSnapshot) {
	d.snapshot = snapshot
}

// RecordCollection records that one more distinct product was collected at
/// the shop. The counter is capped at the delivery total: an attempt to go
// past it fails with *OverCollectionError and changes nothing. Recording a
// collection never moves the status; deciding when "fully collected" becomes
// "picked up" is a separate explicit operator action.
//
// Returns ErrInvalidState if the delivery is already terminal.
func (d *Delivery) RecordCollection() error {
	if d.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrInvalidState, d.status)
	}

	if d.collectedProducts >= d.totalProducts {
		return NewOverCollectionError(d.collectedProducts, d.totalProducts)
	}

	d.collectedProducts++
	return nil
}

// Reassign hands the delivery to a different courier. This is an explicit
// operation, not an implicit overwrite: it is permitted at any non-terminal
// status and does not reset the status, counters or timestamps.
//
// Returns ErrInvalidState when the delivery is already delivered or failed.
func (d *Delivery) Reassign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if d.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrInvalidState, d.status)
	}

	d.courierID = courierID
	return nil
}

// MarkPickedUp moves the delivery from Assigned to PickedUp and stamps the
// pickup time.
//
// The move requires every product to be collected, unless the caller
// explicitly allows a partial pickup; that policy decision stays with the
// operator. The collected <= total invariant holds regardless.
func (d *Delivery) MarkPickedUp(allowPartial bool) error {
	if !allowPartial && d.collectedProducts != d.totalProducts {
		return NewIllegalTransitionErrorWithCause(d.status, PickedUp,
			fmt.Errorf("only %d of %d products collected", d.collectedProducts, d.totalProducts))
	}

	newStatus, err := d.status.Pickup()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.status = newStatus
	d.pickedUpAt = &now
	return nil
}

// StartTransit moves the delivery from PickedUp to InTransit. Purely a
// status move; no new data is required.
func (d *Delivery) StartTransit() error {
	newStatus, err := d.status.Transit()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Complete moves the delivery from InTransit to Delivered.
//
// The move requires a non-empty validation code proving recipient handoff
// and a consistent timeline (delivered >= picked up >= assigned); a violated
// ordering fails with ErrInvalidTimeline and leaves the delivery unchanged.
func (d *Delivery) Complete(validationCode string) error {
	if validationCode == "" {
		return NewIllegalTransitionErrorWithCause(d.status, Delivered, ErrValidationCodeIsRequired)
	}

	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if d.pickedUpAt == nil || d.pickedUpAt.Before(d.assignedAt) || now.Before(*d.pickedUpAt) {
		return ErrInvalidTimeline
	}

	d.status = newStatus
	d.deliveredAt = &now
	d.validationCode = validationCode
	return nil
}

// Fail moves the delivery into the Failed terminal state from any
// non-terminal status. A reason code is required for audit; no product or
// timestamp invariants apply.
func (d *Delivery) Fail(reason string) error {
	if reason == "" {
		return ErrFailureReasonIsRequired
	}

	newStatus, err := d.status.Fail()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.failureReason = reason
	return nil
}

// setID validates and sets the delivery identifier. Construction only.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setOrderID validates and sets the order reference. Construction only.
func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

// setCourierID validates and sets the responsible courier. Construction only.
func (d *Delivery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	d.courierID = courierID
	return nil
}

// setStatus validates and sets the lifecycle status. Construction only.
func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

// setTotalProducts validates and sets the product total. Construction only.
func (d *Delivery) setTotalProducts(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalProducts",
			fmt.Errorf("%d is negative", total))
	}
	d.totalProducts = total
	return nil
}

// setCollectedProducts validates and sets the collected counter against the
// 0 <= collected <= total invariant. Construction only.
func (d *Delivery) setCollectedProducts(collected int) error {
	if collected < 0 || collected > d.totalProducts {
		return errs.NewValueIsOutOfRangeError("collectedProducts", collected, 0, d.totalProducts)
	}
	d.collectedProducts = collected
	return nil
}
