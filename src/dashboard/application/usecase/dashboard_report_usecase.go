package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"dashboard/src/dashboard/application/request"
	"dashboard/src/dashboard/application/response"
	"dashboard/src/dashboard/domain/entity"
	"dashboard/src/dashboard/domain/port"
)

// DashboardReportUseCase caso de uso para el reporte del dashboard
// HITO C - Filtrado por rango de fechas y franja horaria, serie diaria
// continua y métricas agregadas
type DashboardReportUseCase struct {
	datasetRepo port.DatasetRepository
}

// NewDashboardReportUseCase crea una nueva instancia del caso de uso
func NewDashboardReportUseCase(datasetRepo port.DatasetRepository) *DashboardReportUseCase {
	return &DashboardReportUseCase{
		datasetRepo: datasetRepo,
	}
}

// Execute genera el reporte para el rango [start 00:00:00, end 23:59:59]
// en hora local, ambos extremos inclusive
//
// Fechas vacías o rango invertido producen el reporte en cero definido
// (caso degenerado, no error). El formato de fecha inválido sí es error
func (uc *DashboardReportUseCase) Execute(ctx context.Context, req *request.ReportRequest) (*response.DashboardReportResponse, error) {
	// ========================================================================
	// PASO 1: VALIDAR RANGO DE FECHAS
	// ========================================================================
	if req.StartDate == "" || req.EndDate == "" {
		return zeroReport(req), nil
	}

	startDay, err := entity.ParseDay(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDay, err := entity.ParseDay(req.EndDate)
	if err != nil {
		return nil, err
	}

	if startDay.After(endDay) {
		return zeroReport(req), nil
	}

	// ========================================================================
	// PASO 2: PARSEAR FRANJAS HORARIAS (vacío = sin filtro horario)
	// ========================================================================
	timeBuckets := make([]entity.TimeOfDay, 0, len(req.TimeOfDay))
	for _, raw := range req.TimeOfDay {
		bucket, err := entity.ParseTimeOfDay(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, raw)
		}
		timeBuckets = append(timeBuckets, bucket)
	}

	dataset, err := uc.datasetRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading dataset: %w", err)
	}

	// ========================================================================
	// PASO 3: FILTRAR TRANSACCIONES POR RANGO Y FRANJA HORARIA
	// ========================================================================
	rangeStart := startDay.Start()
	rangeEnd := endDay.End()

	filtered := make([]entity.Transaction, 0, len(dataset.Transactions))
	for _, t := range dataset.Transactions {
		if t.Date.Before(rangeStart) || t.Date.After(rangeEnd) {
			continue
		}
		if !entity.AnyTimeOfDayMatches(timeBuckets, t.Date.Hour()) {
			continue
		}
		filtered = append(filtered, t)
	}

	// ========================================================================
	// PASO 4: AGRUPAR APROBADAS POR DÍA CALENDARIO
	// ========================================================================
	totalSales := decimal.Zero
	approvedCount := 0
	dailyMap := make(map[entity.Day]entity.DailyData)

	for _, t := range filtered {
		if !t.IsApproved() {
			continue
		}
		day := t.Day()
		entry, ok := dailyMap[day]
		if !ok {
			entry = entity.NewDailyData(day, decimal.Zero, 0)
		}
		entry.Sales = entry.Sales.Add(t.Amount)
		entry.Transactions++
		dailyMap[day] = entry

		totalSales = totalSales.Add(t.Amount)
		approvedCount++
	}

	// ========================================================================
	// PASO 5: RELLENAR HUECOS (un punto por cada día del rango, ascendente)
	// ========================================================================
	dailyData := make([]entity.DailyData, 0)
	for day := startDay; !day.After(endDay); day = day.Next() {
		entry, ok := dailyMap[day]
		if !ok {
			entry = entity.NewDailyData(day, decimal.Zero, 0)
		}
		dailyData = append(dailyData, entry)
	}

	// ========================================================================
	// PASO 6: CALCULAR MÉTRICAS Y CONSTRUIR RESPONSE
	// ========================================================================
	totalCount := len(filtered)
	conversionRate := "0.0"
	if totalCount > 0 {
		conversionRate = decimal.NewFromInt(int64(approvedCount) * 100).
			Div(decimal.NewFromInt(int64(totalCount))).
			StringFixed(1)
	}

	return &response.DashboardReportResponse{
		StartDate:                 req.StartDate,
		EndDate:                   req.EndDate,
		TimeOfDay:                 req.TimeOfDay,
		FilteredDailyData:         response.ToDailyDataItems(dailyData),
		TransactionsInView:        response.ToTransactionItems(filtered),
		TotalSales:                totalSales,
		TotalTransactionsCount:    totalCount,
		ApprovedTransactionsCount: approvedCount,
		ConversionRate:            conversionRate,
	}, nil
}

// zeroReport retorna el reporte en cero para rangos degenerados
func zeroReport(req *request.ReportRequest) *response.DashboardReportResponse {
	return &response.DashboardReportResponse{
		StartDate:                 req.StartDate,
		EndDate:                   req.EndDate,
		TimeOfDay:                 req.TimeOfDay,
		FilteredDailyData:         make([]response.DailyDataItem, 0),
		TransactionsInView:        make([]response.TransactionItem, 0),
		TotalSales:                decimal.Zero,
		TotalTransactionsCount:    0,
		ApprovedTransactionsCount: 0,
		ConversionRate:            "0.0",
	}
}
