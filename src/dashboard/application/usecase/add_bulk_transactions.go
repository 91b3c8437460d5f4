package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"dashboard/src/dashboard/application/request"
	"dashboard/src/dashboard/application/response"
	"dashboard/src/dashboard/domain/entity"
	"dashboard/src/dashboard/domain/port"
)

// AddBulkTransactionsUseCase caso de uso para registrar un lote de ventas
// HITO B - Carga masiva: misma política de generación que el seed de
// datos de muestra (horario uniforme, sorteo independiente de estados)
type AddBulkTransactionsUseCase struct {
	datasetRepo port.DatasetRepository
	generator   *entity.BatchGenerator
}

// NewAddBulkTransactionsUseCase crea una nueva instancia del caso de uso
func NewAddBulkTransactionsUseCase(datasetRepo port.DatasetRepository, generator *entity.BatchGenerator) *AddBulkTransactionsUseCase {
	return &AddBulkTransactionsUseCase{
		datasetRepo: datasetRepo,
		generator:   generator,
	}
}

// Execute genera el lote, lo combina con el dataset y lo reemplaza completo
func (uc *AddBulkTransactionsUseCase) Execute(ctx context.Context, req *request.AddBulkRequest) (*response.AddTransactionsResponse, error) {
	// ========================================================================
	// PASO 1: VALIDACIONES (se rechazan antes de tocar el dataset)
	// ========================================================================
	if strings.TrimSpace(req.Product) == "" {
		return nil, entity.ErrProductRequired
	}
	if req.UnitAmount.LessThanOrEqual(decimal.Zero) {
		return nil, entity.ErrInvalidAmount
	}
	if req.Quantity <= 0 {
		return nil, entity.ErrInvalidQuantity
	}
	if req.RandomizeStatus && (req.ApprovalRate < 0 || req.ApprovalRate > 100) {
		return nil, entity.ErrInvalidApprovalRate
	}

	day, err := entity.ParseDay(req.Date)
	if err != nil {
		return nil, err
	}

	// ========================================================================
	// PASO 2: GENERAR EL LOTE
	// ========================================================================
	transactions, daily, err := uc.generator.GenerateBatch(entity.BatchParams{
		Product:         req.Product,
		UnitAmount:      req.UnitAmount,
		Quantity:        req.Quantity,
		Day:             day,
		RandomizeStatus: req.RandomizeStatus,
		ApprovalRate:    req.ApprovalRate,
	})
	if err != nil {
		return nil, fmt.Errorf("error generating batch: %w", err)
	}

	// ========================================================================
	// PASO 3: MERGE Y REEMPLAZO COMPLETO DEL DATASET
	// ========================================================================
	dataset, err := uc.datasetRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading dataset: %w", err)
	}

	merged := entity.MergeDataset(dataset, transactions, []entity.DailyData{daily})
	if err := uc.datasetRepo.Replace(ctx, merged); err != nil {
		return nil, fmt.Errorf("error replacing dataset: %w", err)
	}

	log.Printf("✅ Lote registrado: %d transacciones de %s (%d aprobadas)", len(transactions), req.Product, daily.Transactions)

	return &response.AddTransactionsResponse{
		AddedCount:        len(transactions),
		Transactions:      response.ToTransactionItems(transactions),
		Daily:             response.ToDailyDataItems([]entity.DailyData{daily})[0],
		TotalTransactions: len(merged.Transactions),
	}, nil
}
