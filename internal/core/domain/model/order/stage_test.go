package order_test

import (
	"testing"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStage(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		vendorID := kernel.NewUUID()
		stage, err := order.NewStage(
			kernel.NewUUID(), kernel.NewUUID(), 3, order.StagePending, testPlacedOn, &vendorID)

		require.NoError(t, err)
		assert.Equal(t, 3, stage.SequencePosition())
		assert.Equal(t, order.StagePending, stage.Status())
		assert.Nil(t, stage.EndDate())
		require.NotNil(t, stage.VendorID())
		assert.True(t, stage.VendorID().IsEqual(vendorID))
	})

	t.Run("cannot_start_out_completed", func(t *testing.T) {
		_, err := order.NewStage(
			kernel.NewUUID(), kernel.NewUUID(), 1, order.StageCompleted, testPlacedOn, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("sequence_position_must_be_positive", func(t *testing.T) {
		_, err := order.NewStage(
			kernel.NewUUID(), kernel.NewUUID(), 0, order.StagePending, testPlacedOn, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("start_date_is_required", func(t *testing.T) {
		_, err := order.NewStage(
			kernel.NewUUID(), kernel.NewUUID(), 1, order.StagePending, time.Time{}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreStage(t *testing.T) {
	t.Run("completed_with_end_date", func(t *testing.T) {
		stage, err := order.RestoreStage(
			kernel.NewUUID(), kernel.NewUUID(), 2, order.StageCompleted, testPlacedOn, &testToday, nil)

		require.NoError(t, err)
		assert.Equal(t, order.StageCompleted, stage.Status())
		require.NotNil(t, stage.EndDate())
	})

	t.Run("completed_without_end_date_is_invalid", func(t *testing.T) {
		_, err := order.RestoreStage(
			kernel.NewUUID(), kernel.NewUUID(), 2, order.StageCompleted, testPlacedOn, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("pending_with_end_date_is_invalid", func(t *testing.T) {
		_, err := order.RestoreStage(
			kernel.NewUUID(), kernel.NewUUID(), 2, order.StagePending, testPlacedOn, &testToday, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
