package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/vendor"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByStageID(ctx context.Context, stageID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, stageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUncompleted(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Add(ctx context.Context, aggregate *vendor.Vendor) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

type MockAdvanceOrderUoW struct {
	mock.Mock
}

func (m *MockAdvanceOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdvanceOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdvanceOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdvanceOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAdvanceOrderUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

type MockAdvanceOrderUoWFactory struct {
	mock.Mock
}

func (m *MockAdvanceOrderUoWFactory) Create() commands.AdvanceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.AdvanceOrderUoW)
}

// buildOrderWithStages creates an order with Pending stages at the given
// sequence positions and returns the aggregate plus the stage IDs in the same
// order as the positions.
func buildOrderWithStages(t *testing.T, positions ...int) (*order.Order, []kernel.UUID) {
	t.Helper()

	particular, err := order.NewParticular(kernel.NewUUID(), "Fabric", "Wool, 3m", decimal.NewFromInt(150))
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "ORD-2025-001", kernel.NewUUID(), time.Now(), []*order.Particular{particular})
	require.NoError(t, err)

	stageIDs := make([]kernel.UUID, 0, len(positions))
	for _, position := range positions {
		stageID := kernel.NewUUID()
		stage, stageErr := order.NewStage(
			stageID, kernel.NewUUID(), position, order.StagePending, time.Now(), nil)
		require.NoError(t, stageErr)
		require.NoError(t, aggregate.AddStage(stage))
		stageIDs = append(stageIDs, stageID)
	}

	return aggregate, stageIDs
}

func stageByID(t *testing.T, aggregate *order.Order, stageID kernel.UUID) *order.Stage {
	t.Helper()
	stage, err := aggregate.StageByID(stageID)
	require.NoError(t, err)
	return stage
}

func TestNewAdvanceOrderStageCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockAdvanceOrderUoWFactory)

	// Act
	handler := commands.NewAdvanceOrderStageCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestAdvanceOrderStageCommandHandler_Handle_CompletionActivatesNextStage(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate, stageIDs := buildOrderWithStages(t, 1, 2, 4)

	cmd, err := commands.NewAdvanceOrderStageCommand(stageIDs[0], order.StageCompleted, nil)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockAdvanceOrderUoW)
	mockFactory := new(MockAdvanceOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByStageID", ctx, stageIDs[0]).Return(aggregate, nil).Once(),
		mockRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceOrderStageCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)

	completed := stageByID(t, aggregate, stageIDs[0])
	assert.Equal(t, order.StageCompleted, completed.Status())
	assert.NotNil(t, completed.EndDate())

	activated := stageByID(t, aggregate, stageIDs[1])
	assert.Equal(t, order.StageInProgress, activated.Status())

	untouched := stageByID(t, aggregate, stageIDs[2])
	assert.Equal(t, order.StagePending, untouched.Status())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAdvanceOrderStageCommandHandler_Handle_AssignsVendor(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate, stageIDs := buildOrderWithStages(t, 1, 2)

	vendorID := kernel.NewUUID()
	vendorEntity, err := vendor.NewVendor(vendorID, "Silk Road Dyeworks", kernel.NewUUID(), "+1 555 0199")
	require.NoError(t, err)

	cmd, err := commands.NewAdvanceOrderStageCommand(stageIDs[0], order.StageInProgress, &vendorID)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockVendorRepo := new(MockVendorRepository)
	mockUoW := new(MockAdvanceOrderUoW)
	mockFactory := new(MockAdvanceOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByStageID", ctx, stageIDs[0]).Return(aggregate, nil).Once(),
		mockUoW.On("VendorRepository").Return(mockVendorRepo).Once(),
		mockVendorRepo.On("Get", ctx, vendorID).Return(vendorEntity, nil).Once(),
		mockRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceOrderStageCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)

	stage := stageByID(t, aggregate, stageIDs[0])
	assert.Equal(t, order.StageInProgress, stage.Status())
	require.NotNil(t, stage.VendorID())
	assert.True(t, vendorID.IsEqual(*stage.VendorID()))

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockVendorRepo.AssertExpectations(t)
}

func TestAdvanceOrderStageCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.AdvanceOrderStageCommand

	mockFactory := new(MockAdvanceOrderUoWFactory)
	handler := commands.NewAdvanceOrderStageCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAdvanceOrderStageCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestAdvanceOrderStageCommandHandler_Handle_StageNotFoundBeforeAnyWrite(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stageID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderStageCommand(stageID, order.StageCompleted, nil)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockAdvanceOrderUoW)
	mockFactory := new(MockAdvanceOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByStageID", ctx, stageID).
			Return(nil, errs.NewObjectNotFoundError("orderStage", stageID.String())).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceOrderStageCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAdvanceOrderStageCommandHandler_Handle_VendorNotFoundBeforeAnyWrite(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate, stageIDs := buildOrderWithStages(t, 1)
	vendorID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderStageCommand(stageIDs[0], order.StageInProgress, &vendorID)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockVendorRepo := new(MockVendorRepository)
	mockUoW := new(MockAdvanceOrderUoW)
	mockFactory := new(MockAdvanceOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByStageID", ctx, stageIDs[0]).Return(aggregate, nil).Once(),
		mockUoW.On("VendorRepository").Return(mockVendorRepo).Once(),
		mockVendorRepo.On("Get", ctx, vendorID).
			Return(nil, errs.NewObjectNotFoundError("vendor", vendorID.String())).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceOrderStageCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	// The stage must be untouched when the vendor does not exist.
	assert.Equal(t, order.StagePending, stageByID(t, aggregate, stageIDs[0]).Status())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockVendorRepo.AssertExpectations(t)
}

func TestAdvanceOrderStageCommandHandler_Handle_UpdateError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate, stageIDs := buildOrderWithStages(t, 1, 2)

	cmd, err := commands.NewAdvanceOrderStageCommand(stageIDs[0], order.StageCompleted, nil)
	require.NoError(t, err)

	expectedError := errors.New("update failed")
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockAdvanceOrderUoW)
	mockFactory := new(MockAdvanceOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByStageID", ctx, stageIDs[0]).Return(aggregate, nil).Once(),
		mockRepo.On("Update", ctx, aggregate).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceOrderStageCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAdvanceOrderStageCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate, stageIDs := buildOrderWithStages(t, 1)

	cmd, err := commands.NewAdvanceOrderStageCommand(stageIDs[0], order.StageCompleted, nil)
	require.NoError(t, err)

	expectedError := errors.New("commit failed")
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockAdvanceOrderUoW)
	mockFactory := new(MockAdvanceOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByStageID", ctx, stageIDs[0]).Return(aggregate, nil).Once(),
		mockRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAdvanceOrderStageCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
