package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderStageCommand(t *testing.T) {
	// Arrange
	stageID := kernel.NewUUID()
	vendorID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewAdvanceOrderStageCommand(stageID, order.StageCompleted, &vendorID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, stageID, cmd.StageID())
	assert.Equal(t, order.StageCompleted, cmd.Status())
	require.NotNil(t, cmd.VendorID())
	assert.True(t, vendorID.IsEqual(*cmd.VendorID()))
	require.NoError(t, cmd.Validate())
}

func TestNewAdvanceOrderStageCommand_WithoutVendor(t *testing.T) {
	// Act
	cmd, err := commands.NewAdvanceOrderStageCommand(kernel.NewUUID(), order.StageInProgress, nil)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, cmd.VendorID())
}

func TestNewAdvanceOrderStageCommand_InvalidStageID(t *testing.T) {
	// Arrange
	var emptyID kernel.UUID

	// Act
	_, err := commands.NewAdvanceOrderStageCommand(emptyID, order.StageCompleted, nil)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAdvanceOrderStageCommand_InvalidStatus(t *testing.T) {
	// Act
	_, err := commands.NewAdvanceOrderStageCommand(kernel.NewUUID(), order.StageUnknown, nil)

	// Assert
	require.Error(t, err)
}

func TestNewAdvanceOrderStageCommand_InvalidVendorID(t *testing.T) {
	// Arrange
	var emptyVendorID kernel.UUID

	// Act
	_, err := commands.NewAdvanceOrderStageCommand(kernel.NewUUID(), order.StageCompleted, &emptyVendorID)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAdvanceOrderStageCommand_ValidateZeroValue(t *testing.T) {
	// Arrange
	var cmd commands.AdvanceOrderStageCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAdvanceOrderStageCommandIsNotConstructed)
}
