package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a fixed transition table, further restricted per actor role
// class (see role.go).
//
// State transitions (role-independent ceiling):
//
//	RASCUNHO ──> PENDENTE ──> CONFIRMADO ──> EM_PRODUCAO ──> PRONTO ──> ENTREGUE
//	    │            │             │              │
//	    └────────────┴─────────────┴──────────────┴──> CANCELADO
//
// ENTREGUE and CANCELADO are terminal: no outbound edges for any role.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Rascunho is the initial status: a draft the customer is still composing.
	Rascunho

	// Pendente means the customer submitted the order and awaits confirmation.
	Pendente

	// Confirmado means internal staff accepted the order.
	Confirmado

	// EmProducao means the order is being manufactured.
	EmProducao

	// Pronto means production finished and the order awaits delivery.
	Pronto

	// Entregue means the order was delivered. Terminal.
	Entregue

	// Cancelado means the order was cancelled. Terminal.
	Cancelado
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Rascunho:   "RASCUNHO",
		Pendente:   "PENDENTE",
		Confirmado: "CONFIRMADO",
		EmProducao: "EM_PRODUCAO",
		Pronto:     "PRONTO",
		Entregue:   "ENTREGUE",
		Cancelado:  "CANCELADO",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Rascunho:   "RASCUNHO",
		Pendente:   "PENDENTE",
		Confirmado: "CONFIRMADO",
		EmProducao: "EM_PRODUCAO",
		Pronto:     "PRONTO",
		Entregue:   "ENTREGUE",
		Cancelado:  "CANCELADO",
	}
}

// AllStatuses returns every valid status, in lifecycle order.
func AllStatuses() []Status {
	return []Status{Rascunho, Pendente, Confirmado, EmProducao, Pronto, Entregue, Cancelado}
}

// StatusFromString parses the wire representation ("RASCUNHO", "PENDENTE", ...).
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Entregue || s == Cancelado
}

// CanEditContent is the edit-policy gate: order content (items, observations)
// may only be mutated while the order is still in RASCUNHO or PENDENTE.
// Pure function of the status, no side effects.
func (s Status) CanEditContent() bool {
	return s == Rascunho || s == Pendente
}

// TransitionTo validates a transition request and returns the new status.
//
// The check is two-staged and the failures are distinct:
//   - ErrInvalidTransition when the edge does not exist in the unrestricted
//     table at all (the transition is impossible for anyone)
//   - ErrTransitionForbidden when the edge exists but the actor's role class
//     is not permitted to take it
func (s Status) TransitionTo(target Status, role RoleClass) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if err := role.Validate(); err != nil {
		return Unknown, err
	}

	if !containsStatus(unrestrictedTransitions()[s], target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}

	if !containsStatus(roleTransitions()[role][s], target) {
		return Unknown, fmt.Errorf("%w: %s may not move %s -> %s", ErrTransitionForbidden, role, s, target)
	}

	return target, nil
}
