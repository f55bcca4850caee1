package commands

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var ErrRepairOrderTotalsCommandIsNotConstructed = errors.New(
	"RepairOrderTotalsCommand must be created via NewRepairOrderTotalsCommand constructor",
)

// RepairOrderTotalsCommand requests a sweep over all orders whose stored total
// drifted from the sum of their line items. Parameterless; the scheduled
// repair job issues it periodically.
type RepairOrderTotalsCommand struct {
	guard guard.ConstructorGuard
}

// NewRepairOrderTotalsCommand creates a repair sweep command.
func NewRepairOrderTotalsCommand() RepairOrderTotalsCommand {
	return RepairOrderTotalsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RepairOrderTotalsCommand) Validate() error {
	return c.guard.Validate(ErrRepairOrderTotalsCommandIsNotConstructed)
}
