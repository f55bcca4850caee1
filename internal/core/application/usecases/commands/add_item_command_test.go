package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddItemCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	productID := kernel.NewUUID()
	quantity := mustQuantity(t, "2.5")

	cmd, err := commands.NewAddItemCommand(orderID, itemID, productID, quantity)
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.ItemID().IsEqual(itemID))
	assert.True(t, cmd.ProductID().IsEqual(productID))
	assert.True(t, cmd.Quantity().IsEqual(quantity))
}

func TestNewAddItemCommand_InvalidIDs(t *testing.T) {
	quantity := mustQuantity(t, "1")

	_, err := commands.NewAddItemCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), quantity)
	require.Error(t, err)

	_, err = commands.NewAddItemCommand(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), quantity)
	require.Error(t, err)

	_, err = commands.NewAddItemCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, quantity)
	require.Error(t, err)
}

func TestNewAddItemCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewAddItemCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.Quantity{})
	require.Error(t, err)
}

func TestAddItemCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.AddItemCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddItemCommandIsNotConstructed)
}
