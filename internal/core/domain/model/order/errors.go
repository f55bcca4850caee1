package order

import "errors"

// Domain error taxonomy for the order lifecycle. All conditions are local and
// recoverable; callers classify them with errors.Is and render a user message.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

	// ErrInvalidTransition means the requested edge does not exist in the
	// unrestricted transition table: the transition is impossible for anyone.
	ErrInvalidTransition = errors.New("status transition does not exist")

	// ErrTransitionForbidden means the edge exists but the actor's role class
	// is not permitted to take it.
	ErrTransitionForbidden = errors.New("status transition is not permitted for role")

	// ErrOrderNotEditable means the order content may no longer be mutated in
	// its current status.
	ErrOrderNotEditable = errors.New("order content is not editable in current status")

	// ErrItemNotFound means the referenced line item is not part of the order.
	ErrItemNotFound = errors.New("item is not part of the order")

	// ErrDuplicateItem means a line item with the same id already exists.
	ErrDuplicateItem = errors.New("item already exists in the order")

	// ErrProductUnavailable means the product snapshot is inactive and may not
	// be added to an order.
	ErrProductUnavailable = errors.New("product is not available")
)
