package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/pipeline"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePipelineStageCommand(t *testing.T) {
	// Act
	cmd, err := commands.NewCreatePipelineStageCommand("Cutting", "Fabric cutting on the main table", 10)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Cutting", cmd.Name())
	assert.Equal(t, "Fabric cutting on the main table", cmd.Description())
	assert.Equal(t, 10, cmd.SequencePosition())
	require.NoError(t, cmd.Validate())
}

func TestNewCreatePipelineStageCommand_MissingName(t *testing.T) {
	// Act
	_, err := commands.NewCreatePipelineStageCommand("", "", 10)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreatePipelineStageCommand_PositionOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		position int
	}{
		{"zero", 0},
		{"negative", -3},
		{"above maximum", pipeline.MaxSequencePosition + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreatePipelineStageCommand("Cutting", "", tt.position)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestCreatePipelineStageCommand_ValidateZeroValue(t *testing.T) {
	// Arrange
	var cmd commands.CreatePipelineStageCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreatePipelineStageCommandIsNotConstructed)
}
