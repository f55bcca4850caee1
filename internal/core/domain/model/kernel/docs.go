// Package kernel provides core domain primitives for the pedidos system.
// It implements the fundamental value objects shared by every aggregate:
//
//   - UUID: validated entity identifier wrapping github.com/google/uuid
//   - Money: fixed-precision monetary amount on shopspring/decimal
//   - Quantity: strictly positive decimal quantity
//
// All value objects are immutable: every operation returns a new instance.
// Zero values are invalid where noted and must be obtained through the
// provided constructor functions.
package kernel
