package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard/src/dashboard/application/request"
	"dashboard/src/dashboard/application/usecase"
	"dashboard/src/dashboard/domain/entity"
	mock_port "dashboard/src/dashboard/domain/port/mocks"
)

func mustTx(t *testing.T, product string, amount int64, status entity.TransactionStatus, date time.Time) entity.Transaction {
	t.Helper()
	tx, err := entity.NewTransaction(product, decimal.NewFromInt(amount), status, date)
	require.NoError(t, err)
	return *tx
}

// datasetFromTransactions construye el dataset canónico derivando los
// agregados diarios de las transacciones aprobadas
func datasetFromTransactions(transactions []entity.Transaction) entity.Dataset {
	daily := make([]entity.DailyData, 0, len(transactions))
	for _, tx := range transactions {
		if tx.IsApproved() {
			daily = append(daily, entity.NewDailyData(tx.Day(), tx.Amount, 1))
		}
	}
	return entity.MergeDataset(entity.NewEmptyDataset(), transactions, daily)
}

func TestDashboardReportUseCase_GapFilling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactions := []entity.Transaction{
		mustTx(t, "Labial Rojo Intenso", 100, entity.StatusApproved, time.Date(2024, 5, 3, 10, 0, 0, 0, time.Local)),
		mustTx(t, "Agua Micelar", 40, entity.StatusApproved, time.Date(2024, 5, 3, 16, 0, 0, 0, time.Local)),
		mustTx(t, "Delineador en Gel", 70, entity.StatusApproved, time.Date(2024, 5, 8, 9, 0, 0, 0, time.Local)),
	}

	repo := mock_port.NewMockDatasetRepository(ctrl)
	repo.EXPECT().Get(gomock.Any()).Return(datasetFromTransactions(transactions), nil)

	uc := usecase.NewDashboardReportUseCase(repo)
	resp, err := uc.Execute(context.Background(), &request.ReportRequest{
		StartDate: "2024-05-01",
		EndDate:   "2024-05-10",
	})
	require.NoError(t, err)

	// Un punto por cada día calendario del rango, sin huecos ni duplicados
	require.Len(t, resp.FilteredDailyData, 10)
	for i, point := range resp.FilteredDailyData {
		expected := time.Date(2024, 5, 1+i, 0, 0, 0, 0, time.Local).Format("2006-01-02")
		assert.Equal(t, expected, point.Date)
	}

	// Los días sin ventas quedan en cero
	assert.True(t, resp.FilteredDailyData[0].Sales.IsZero())
	assert.Equal(t, 0, resp.FilteredDailyData[0].Transactions)

	// Los días con ventas acumulan las aprobadas
	assert.True(t, resp.FilteredDailyData[2].Sales.Equal(decimal.NewFromInt(140)))
	assert.Equal(t, 2, resp.FilteredDailyData[2].Transactions)
	assert.True(t, resp.FilteredDailyData[7].Sales.Equal(decimal.NewFromInt(70)))
}

func TestDashboardReportUseCase_DegenerateRanges(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
	}{
		{name: "start after end", startDate: "2024-05-10", endDate: "2024-05-01"},
		{name: "empty start", startDate: "", endDate: "2024-05-01"},
		{name: "empty end", startDate: "2024-05-01", endDate: ""},
		{name: "both empty", startDate: "", endDate: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// El caso degenerado no llega a consultar el repositorio
			repo := mock_port.NewMockDatasetRepository(ctrl)

			uc := usecase.NewDashboardReportUseCase(repo)
			resp, err := uc.Execute(context.Background(), &request.ReportRequest{
				StartDate: tt.startDate,
				EndDate:   tt.endDate,
			})
			require.NoError(t, err)

			assert.Empty(t, resp.FilteredDailyData)
			assert.Empty(t, resp.TransactionsInView)
			assert.True(t, resp.TotalSales.IsZero())
			assert.Equal(t, 0, resp.TotalTransactionsCount)
			assert.Equal(t, 0, resp.ApprovedTransactionsCount)
			assert.Equal(t, "0.0", resp.ConversionRate)
		})
	}
}

func TestDashboardReportUseCase_InvalidInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_port.NewMockDatasetRepository(ctrl)
	uc := usecase.NewDashboardReportUseCase(repo)

	_, err := uc.Execute(context.Background(), &request.ReportRequest{
		StartDate: "01/05/2024",
		EndDate:   "2024-05-10",
	})
	assert.ErrorContains(t, err, "invalid date format")

	_, err = uc.Execute(context.Background(), &request.ReportRequest{
		StartDate: "2024-05-01",
		EndDate:   "2024-05-10",
		TimeOfDay: []string{"NIGHT"},
	})
	assert.ErrorIs(t, err, entity.ErrInvalidTimeOfDay)
}

func TestDashboardReportUseCase_TimeOfDayORSemantics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactions := []entity.Transaction{
		mustTx(t, "Madrugada", 10, entity.StatusApproved, time.Date(2024, 5, 5, 3, 0, 0, 0, time.Local)),
		mustTx(t, "Mañana", 20, entity.StatusApproved, time.Date(2024, 5, 5, 9, 0, 0, 0, time.Local)),
		mustTx(t, "Tarde", 30, entity.StatusApproved, time.Date(2024, 5, 5, 15, 0, 0, 0, time.Local)),
		mustTx(t, "Noche", 40, entity.StatusApproved, time.Date(2024, 5, 5, 21, 0, 0, 0, time.Local)),
	}

	repo := mock_port.NewMockDatasetRepository(ctrl)
	repo.EXPECT().Get(gomock.Any()).Return(datasetFromTransactions(transactions), nil)

	uc := usecase.NewDashboardReportUseCase(repo)
	resp, err := uc.Execute(context.Background(), &request.ReportRequest{
		StartDate: "2024-05-05",
		EndDate:   "2024-05-05",
		TimeOfDay: []string{"MORNING", "EVENING"},
	})
	require.NoError(t, err)

	// Horas {3, 9, 21} pasan (3 y 21 por la franja nocturna que cruza
	// medianoche, 9 por la mañana); la 15 queda afuera
	require.Len(t, resp.TransactionsInView, 3)
	products := []string{
		resp.TransactionsInView[0].Product,
		resp.TransactionsInView[1].Product,
		resp.TransactionsInView[2].Product,
	}
	assert.NotContains(t, products, "Tarde")
	assert.True(t, resp.TotalSales.Equal(decimal.NewFromInt(70)))
}

func TestDashboardReportUseCase_ConversionRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactions := []entity.Transaction{
		mustTx(t, "Aprobada", 100, entity.StatusApproved, time.Date(2024, 5, 5, 10, 0, 0, 0, time.Local)),
		mustTx(t, "Pendiente", 100, entity.StatusPending, time.Date(2024, 5, 5, 11, 0, 0, 0, time.Local)),
		mustTx(t, "Rechazada", 100, entity.StatusDeclined, time.Date(2024, 5, 5, 12, 0, 0, 0, time.Local)),
	}

	repo := mock_port.NewMockDatasetRepository(ctrl)
	repo.EXPECT().Get(gomock.Any()).Return(datasetFromTransactions(transactions), nil)

	uc := usecase.NewDashboardReportUseCase(repo)
	resp, err := uc.Execute(context.Background(), &request.ReportRequest{
		StartDate: "2024-05-05",
		EndDate:   "2024-05-05",
	})
	require.NoError(t, err)

	// 1 aprobada de 3 filtradas: 33.3%, un decimal
	assert.Equal(t, 3, resp.TotalTransactionsCount)
	assert.Equal(t, 1, resp.ApprovedTransactionsCount)
	assert.Equal(t, "33.3", resp.ConversionRate)
	assert.True(t, resp.TotalSales.Equal(decimal.NewFromInt(100)))
}

func TestDashboardReportUseCase_RangeBoundariesInclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactions := []entity.Transaction{
		mustTx(t, "Primer segundo", 10, entity.StatusApproved, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)),
		mustTx(t, "Último segundo", 20, entity.StatusApproved, time.Date(2024, 5, 2, 23, 59, 59, 0, time.Local)),
		mustTx(t, "Fuera del rango", 30, entity.StatusApproved, time.Date(2024, 5, 3, 0, 0, 0, 0, time.Local)),
	}

	repo := mock_port.NewMockDatasetRepository(ctrl)
	repo.EXPECT().Get(gomock.Any()).Return(datasetFromTransactions(transactions), nil)

	uc := usecase.NewDashboardReportUseCase(repo)
	resp, err := uc.Execute(context.Background(), &request.ReportRequest{
		StartDate: "2024-05-01",
		EndDate:   "2024-05-02",
	})
	require.NoError(t, err)

	require.Len(t, resp.TransactionsInView, 2)
	assert.True(t, resp.TotalSales.Equal(decimal.NewFromInt(30)))
}

func TestDashboardReportUseCase_EndToEndScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Venta individual de 100 + lote de 5 de 50, todo aprobado el 2024-06-01
	day, err := entity.ParseDay("2024-06-01")
	require.NoError(t, err)

	single := mustTx(t, "X", 100, entity.StatusApproved, time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local))
	dataset := entity.MergeDataset(entity.NewEmptyDataset(),
		[]entity.Transaction{single},
		[]entity.DailyData{entity.NewDailyData(day, decimal.NewFromInt(100), 1)},
	)

	generator := entity.NewBatchGeneratorWithSeed(11)
	batch, batchDaily, err := generator.GenerateBatch(entity.BatchParams{
		Product:    "X",
		UnitAmount: decimal.NewFromInt(50),
		Quantity:   5,
		Day:        day,
	})
	require.NoError(t, err)
	dataset = entity.MergeDataset(dataset, batch, []entity.DailyData{batchDaily})

	repo := mock_port.NewMockDatasetRepository(ctrl)
	repo.EXPECT().Get(gomock.Any()).Return(dataset, nil)

	uc := usecase.NewDashboardReportUseCase(repo)
	resp, err := uc.Execute(context.Background(), &request.ReportRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-01",
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalSales.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 6, resp.TotalTransactionsCount)
	assert.Equal(t, 6, resp.ApprovedTransactionsCount)
	assert.Equal(t, "100.0", resp.ConversionRate)
	require.Len(t, resp.FilteredDailyData, 1)
	assert.True(t, resp.FilteredDailyData[0].Sales.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 6, resp.FilteredDailyData[0].Transactions)
}
