// Package order provides domain entities and business logic for order lifecycle
// management in the pedidos system. It implements the Order aggregate root with
// its line items, the status state machine with role-gated transitions, and the
// edit policy derived from status.
//
// The aggregate is the sole mutation surface for an order. Every operation
// either leaves all invariants holding or fails without observable change:
//
//   - the stored total always equals the rounded sum of the line totals
//   - status only moves along edges of the transition table
//   - terminal statuses (ENTREGUE, CANCELADO) admit no further change
//   - line items may only be mutated while the order is in RASCUNHO or PENDENTE
//   - soft-deleted orders behave as not found
package order
