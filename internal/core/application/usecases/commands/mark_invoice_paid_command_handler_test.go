package commands_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/invoice"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceUoW struct {
	mock.Mock
}

func (m *MockInvoiceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInvoiceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInvoiceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInvoiceUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockInvoiceUoWFactory struct {
	mock.Mock
}

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

func newTestInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(
		kernel.NewUUID(), "INV-2025-031", decimal.NewFromInt(150),
		time.Now(), time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	return inv
}

func TestMarkInvoicePaidCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	inv := newTestInvoice(t)
	paidOn := time.Now()

	cmd, err := commands.NewMarkInvoicePaidCommand(inv.ID(), paidOn)
	require.NoError(t, err)

	mockRepo := new(MockInvoiceRepository)
	mockUoW := new(MockInvoiceUoW)
	mockFactory := new(MockInvoiceUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InvoiceRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		mockRepo.On("Update", ctx, inv).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkInvoicePaidCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, inv.Paid())
	require.NotNil(t, inv.PaidOn())
	assert.True(t, paidOn.Equal(*inv.PaidOn()))

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestMarkInvoicePaidCommandHandler_Handle_AlreadyPaidKeepsOriginalDate(t *testing.T) {
	// Arrange
	ctx := t.Context()
	inv := newTestInvoice(t)
	firstPayment := time.Now().AddDate(0, 0, -3)
	require.NoError(t, inv.MarkPaid(firstPayment))

	cmd, err := commands.NewMarkInvoicePaidCommand(inv.ID(), time.Now())
	require.NoError(t, err)

	mockRepo := new(MockInvoiceRepository)
	mockUoW := new(MockInvoiceUoW)
	mockFactory := new(MockInvoiceUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InvoiceRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, inv.ID()).Return(inv, nil).Once(),
		mockRepo.On("Update", ctx, inv).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkInvoicePaidCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, inv.Paid())
	require.NotNil(t, inv.PaidOn())
	assert.True(t, firstPayment.Equal(*inv.PaidOn()), "repeated payment must not overwrite the original date")

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestMarkInvoicePaidCommandHandler_Handle_InvoiceNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	invoiceID := kernel.NewUUID()

	cmd, err := commands.NewMarkInvoicePaidCommand(invoiceID, time.Now())
	require.NoError(t, err)

	mockRepo := new(MockInvoiceRepository)
	mockUoW := new(MockInvoiceUoW)
	mockFactory := new(MockInvoiceUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InvoiceRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, invoiceID).
			Return(nil, errs.NewObjectNotFoundError("invoice", invoiceID.String())).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkInvoicePaidCommandHandler(mockFactory)

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
