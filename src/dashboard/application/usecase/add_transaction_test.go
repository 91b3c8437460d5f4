package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard/src/dashboard/application/request"
	"dashboard/src/dashboard/application/usecase"
	"dashboard/src/dashboard/domain/entity"
	mock_port "dashboard/src/dashboard/domain/port/mocks"
)

func TestAddTransactionUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var replaced entity.Dataset
	repo := mock_port.NewMockDatasetRepository(ctrl)
	repo.EXPECT().Get(gomock.Any()).Return(entity.NewEmptyDataset(), nil)
	repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ds entity.Dataset) error {
			replaced = ds
			return nil
		})

	uc := usecase.NewAddTransactionUseCase(repo, entity.NewBatchGeneratorWithSeed(3))
	resp, err := uc.Execute(context.Background(), &request.AddTransactionRequest{
		Product: "Sérum Vitamina C",
		Amount:  decimal.NewFromInt(100),
		Status:  "APPROVED",
		Date:    "2024-06-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.AddedCount)
	assert.Equal(t, 1, resp.TotalTransactions)

	// El dataset reemplazado contiene la transacción y su agregado diario
	require.Len(t, replaced.Transactions, 1)
	assert.Equal(t, "2024-06-01", replaced.Transactions[0].Day().String())
	require.Len(t, replaced.DailyData, 1)
	assert.True(t, replaced.DailyData[0].Sales.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, replaced.DailyData[0].Transactions)
}

func TestAddTransactionUseCase_NonApprovedDoesNotCountAsSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var replaced entity.Dataset
	repo := mock_port.NewMockDatasetRepository(ctrl)
	repo.EXPECT().Get(gomock.Any()).Return(entity.NewEmptyDataset(), nil)
	repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ds entity.Dataset) error {
			replaced = ds
			return nil
		})

	uc := usecase.NewAddTransactionUseCase(repo, entity.NewBatchGeneratorWithSeed(3))
	_, err := uc.Execute(context.Background(), &request.AddTransactionRequest{
		Product: "Agua Micelar",
		Amount:  decimal.NewFromInt(80),
		Status:  "PENDING",
		Date:    "2024-06-01",
	})
	require.NoError(t, err)

	// La transacción existe pero el día queda en cero
	require.Len(t, replaced.Transactions, 1)
	require.Len(t, replaced.DailyData, 1)
	assert.True(t, replaced.DailyData[0].Sales.IsZero())
	assert.Equal(t, 0, replaced.DailyData[0].Transactions)
}

func TestAddTransactionUseCase_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     *request.AddTransactionRequest
		wantErr error
	}{
		{
			name: "empty product",
			req: &request.AddTransactionRequest{
				Product: "  ",
				Amount:  decimal.NewFromInt(100),
				Status:  "APPROVED",
				Date:    "2024-06-01",
			},
			wantErr: entity.ErrProductRequired,
		},
		{
			name: "non positive amount",
			req: &request.AddTransactionRequest{
				Product: "Agua Micelar",
				Amount:  decimal.Zero,
				Status:  "APPROVED",
				Date:    "2024-06-01",
			},
			wantErr: entity.ErrInvalidAmount,
		},
		{
			name: "unknown status",
			req: &request.AddTransactionRequest{
				Product: "Agua Micelar",
				Amount:  decimal.NewFromInt(100),
				Status:  "CANCELLED",
				Date:    "2024-06-01",
			},
			wantErr: entity.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// El error de validación se rechaza antes de tocar el dataset
			repo := mock_port.NewMockDatasetRepository(ctrl)

			uc := usecase.NewAddTransactionUseCase(repo, entity.NewBatchGeneratorWithSeed(3))
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddTransactionUseCase_InvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_port.NewMockDatasetRepository(ctrl)
	uc := usecase.NewAddTransactionUseCase(repo, entity.NewBatchGeneratorWithSeed(3))

	_, err := uc.Execute(context.Background(), &request.AddTransactionRequest{
		Product: "Agua Micelar",
		Amount:  decimal.NewFromInt(100),
		Status:  "APPROVED",
		Date:    "junio 1",
	})
	assert.ErrorContains(t, err, "invalid date format")
}
