package order

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/pkg/errs"
)

// Order is the aggregate root for a customer purchase request. It is the sole
// mutation surface for its line items and status, and maintains the invariant
// that the stored total always equals the rounded sum of the line totals.
//
// Orders are created in RASCUNHO with no items and a zero total. The version
// field is the optimistic concurrency token checked by the repository on
// update; it never changes in memory after construction or restore.
type Order struct {
	id           kernel.UUID
	clienteID    kernel.UUID
	status       Status
	items        []*Item
	total        kernel.Money
	observations string

	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time

	version       int
	isConstructed bool
}

// NewOrder creates a new Order in RASCUNHO status with no items.
func NewOrder(id, clienteID kernel.UUID, now time.Time) (*Order, error) {
	o := &Order{
		status:        Rascunho,
		total:         kernel.ZeroMoney(),
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClienteID(clienteID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. The stored total is
// kept as-is rather than recomputed, so drift remains observable and
// repairable through RecomputeTotal.
func RestoreOrder(
	id, clienteID kernel.UUID,
	status Status,
	items []*Item,
	total kernel.Money,
	observations string,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		total:         total,
		observations:  observations,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deletedAt:     deletedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClienteID(clienteID),
		o.setStatus(status),
		o.setItems(items),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClienteID returns the owning customer's identifier.
func (o *Order) ClienteID() kernel.UUID {
	return o.clienteID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the line item slice. Mutating the returned slice
// does not affect the aggregate.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the line item with the given id, or nil when absent.
func (o *Order) Item(itemID kernel.UUID) *Item {
	for _, item := range o.items {
		if item.id.IsEqual(itemID) {
			return item
		}
	}
	return nil
}

// Total returns the stored aggregate value.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Observations returns the free-text notes attached to the order.
func (o *Order) Observations() string {
	return o.observations
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeletedAt returns the soft-deletion tombstone, nil while the order lives.
func (o *Order) DeletedAt() *time.Time {
	return o.deletedAt
}

// IsDeleted reports whether the order carries a soft-deletion tombstone.
func (o *Order) IsDeleted() bool {
	return o.deletedAt != nil
}

// Version returns the optimistic concurrency token loaded from persistence.
func (o *Order) Version() int {
	return o.version
}

// AddItem appends a line item priced from the product snapshot. The unit price
// is frozen at this instant. Recomputes the total.
//
// Fails with ErrOrderNotEditable outside RASCUNHO/PENDENTE, with
// ErrProductUnavailable for an inactive product, and with ErrDuplicateItem
// when the item id is already present.
func (o *Order) AddItem(itemID kernel.UUID, snapshot product.Snapshot, quantity kernel.Quantity, now time.Time) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}
	if !snapshot.IsActive() {
		return fmt.Errorf("%w: %s", ErrProductUnavailable, snapshot.ProductID())
	}
	if o.Item(itemID) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateItem, itemID)
	}

	item, err := NewItem(itemID, snapshot.ProductID(), quantity, snapshot.UnitPrice())
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recomputeTotal()
	o.touch(now)
	return nil
}

// UpdateItemQuantity replaces a line item's quantity and recomputes the total.
// Fails with ErrItemNotFound when the item is not part of the order.
func (o *Order) UpdateItemQuantity(itemID kernel.UUID, quantity kernel.Quantity, now time.Time) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	item := o.Item(itemID)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	if err := item.changeQuantity(quantity); err != nil {
		return err
	}

	o.recomputeTotal()
	o.touch(now)
	return nil
}

// RemoveItem deletes a line item and recomputes the total. Removing the last
// item is permitted; the total becomes zero.
func (o *Order) RemoveItem(itemID kernel.UUID, now time.Time) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.id.IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.recomputeTotal()
			o.touch(now)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}

// RecomputeTotal re-derives the total from the current item set. Idempotent:
// applying it twice yields the same total as once. Exposed as a first-class
// repair operation for detected drift; reports whether the stored value
// actually changed.
func (o *Order) RecomputeTotal(now time.Time) (bool, error) {
	if err := o.ensureNotDeleted(); err != nil {
		return false, err
	}

	previous := o.total
	o.recomputeTotal()
	if previous.IsEqual(o.total) {
		return false, nil
	}

	o.touch(now)
	return true, nil
}

// TransitionTo requests a status transition on behalf of an actor role class.
// Terminal statuses reject every target. On success the status and updatedAt
// are replaced atomically from the caller's perspective; persistence commits
// the whole aggregate or nothing.
func (o *Order) TransitionTo(target Status, role RoleClass, now time.Time) error {
	if err := o.ensureNotDeleted(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	return nil
}

// ChangeObservations replaces the order's free-text notes.
// Subject to the same edit-policy gate as item mutation.
func (o *Order) ChangeObservations(text string, now time.Time) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	o.observations = text
	o.touch(now)
	return nil
}

// MarkDeleted sets the soft-deletion tombstone. A deleted order behaves as
// not found for every subsequent operation.
func (o *Order) MarkDeleted(now time.Time) error {
	if err := o.ensureNotDeleted(); err != nil {
		return err
	}

	deletedAt := now
	o.deletedAt = &deletedAt
	o.touch(now)
	return nil
}

func (o *Order) ensureNotDeleted() error {
	if o.IsDeleted() {
		return errs.NewObjectNotFoundError("order", o.id.String())
	}
	return nil
}

func (o *Order) ensureEditable() error {
	if err := o.ensureNotDeleted(); err != nil {
		return err
	}
	if !o.status.CanEditContent() {
		return fmt.Errorf("%w: %s", ErrOrderNotEditable, o.status)
	}
	return nil
}

// recomputeTotal sums the exact line totals and rounds once at the boundary.
func (o *Order) recomputeTotal() {
	lineTotals := make([]kernel.Money, len(o.items))
	for idx, item := range o.items {
		lineTotals[idx] = item.LineTotal()
	}
	o.total = kernel.SumMoney(lineTotals...).Round2()
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClienteID(clienteID kernel.UUID) error {
	if err := clienteID.Validate(); err != nil {
		return fmt.Errorf("cliente id: %w", err)
	}
	o.clienteID = clienteID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateItem, item.id)
		}
		seen[item.id] = struct{}{}
	}
	o.items = items
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"order version", fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}
