package commands_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/pipeline"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPipelineStageRepository struct {
	mock.Mock
}

func (m *MockPipelineStageRepository) Add(ctx context.Context, aggregate *pipeline.Stage) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPipelineStageRepository) Get(ctx context.Context, id kernel.UUID) (*pipeline.Stage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Stage), args.Error(1)
}

func (m *MockPipelineStageRepository) GetAll(ctx context.Context) ([]*pipeline.Stage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pipeline.Stage), args.Error(1)
}

type MockAddStageUoW struct {
	mock.Mock
}

func (m *MockAddStageUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddStageUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddStageUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddStageUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAddStageUoW) PipelineStageRepository() ports.PipelineStageRepository {
	args := m.Called()
	return args.Get(0).(ports.PipelineStageRepository)
}

func (m *MockAddStageUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

type MockAddStageUoWFactory struct {
	mock.Mock
}

func (m *MockAddStageUoWFactory) Create() commands.AddStageUoW {
	args := m.Called()
	return args.Get(0).(commands.AddStageUoW)
}

func TestAddOrderStageCommandHandler_Handle_CopiesSequencePositionFromDefinition(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate, _ := buildOrderWithStages(t, 1)

	definitionID := kernel.NewUUID()
	definition, err := pipeline.NewStage(definitionID, "Stitching", "Machine stitching", 20)
	require.NoError(t, err)

	cmd, err := commands.NewAddOrderStageCommand(
		aggregate.ID(), definitionID, nil, time.Now(), order.StagePending)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockPipelineRepo := new(MockPipelineStageRepository)
	mockUoW := new(MockAddStageUoW)
	mockFactory := new(MockAddStageUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockUoW.On("PipelineStageRepository").Return(mockPipelineRepo).Once(),
		mockPipelineRepo.On("Get", ctx, definitionID).Return(definition, nil).Once(),
		mockOrderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddOrderStageCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)

	appended := stageByID(t, aggregate, cmd.StageID())
	assert.Equal(t, 20, appended.SequencePosition())
	assert.Equal(t, order.StagePending, appended.Status())
	require.Len(t, aggregate.Stages(), 2)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockPipelineRepo.AssertExpectations(t)
}

func TestAddOrderStageCommandHandler_Handle_DuplicateSequencePosition(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate, _ := buildOrderWithStages(t, 20)

	definitionID := kernel.NewUUID()
	definition, err := pipeline.NewStage(definitionID, "Stitching", "", 20)
	require.NoError(t, err)

	cmd, err := commands.NewAddOrderStageCommand(
		aggregate.ID(), definitionID, nil, time.Now(), order.StagePending)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockPipelineRepo := new(MockPipelineStageRepository)
	mockUoW := new(MockAddStageUoW)
	mockFactory := new(MockAddStageUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockUoW.On("PipelineStageRepository").Return(mockPipelineRepo).Once(),
		mockPipelineRepo.On("Get", ctx, definitionID).Return(definition, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddOrderStageCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	mockOrderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockPipelineRepo.AssertExpectations(t)
}

func TestAddOrderStageCommandHandler_Handle_PipelineStageNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate, _ := buildOrderWithStages(t, 1)
	definitionID := kernel.NewUUID()

	cmd, err := commands.NewAddOrderStageCommand(
		aggregate.ID(), definitionID, nil, time.Now(), order.StagePending)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockPipelineRepo := new(MockPipelineStageRepository)
	mockUoW := new(MockAddStageUoW)
	mockFactory := new(MockAddStageUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockUoW.On("PipelineStageRepository").Return(mockPipelineRepo).Once(),
		mockPipelineRepo.On("Get", ctx, definitionID).
			Return(nil, errs.NewObjectNotFoundError("pipelineStage", definitionID.String())).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddOrderStageCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockOrderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockPipelineRepo.AssertExpectations(t)
}
