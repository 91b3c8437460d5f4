package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"dashboard/src/dashboard/application/request"
	"dashboard/src/dashboard/application/response"
	"dashboard/src/dashboard/domain/entity"
	"dashboard/src/dashboard/domain/port"
)

// AddTransactionUseCase caso de uso para registrar una venta individual
type AddTransactionUseCase struct {
	datasetRepo port.DatasetRepository
	generator   *entity.BatchGenerator
}

// NewAddTransactionUseCase crea una nueva instancia del caso de uso
func NewAddTransactionUseCase(datasetRepo port.DatasetRepository, generator *entity.BatchGenerator) *AddTransactionUseCase {
	return &AddTransactionUseCase{
		datasetRepo: datasetRepo,
		generator:   generator,
	}
}

// Execute registra una venta sobre el día indicado con un horario
// aleatorio uniforme, y reemplaza el dataset por el resultado del merge
//
// Los errores de validación se rechazan antes de tocar el dataset:
// el estado previo queda intacto
func (uc *AddTransactionUseCase) Execute(ctx context.Context, req *request.AddTransactionRequest) (*response.AddTransactionsResponse, error) {
	// ========================================================================
	// PASO 1: VALIDAR Y CONSTRUIR LA TRANSACCIÓN
	// ========================================================================
	day, err := entity.ParseDay(req.Date)
	if err != nil {
		return nil, err
	}

	status := entity.TransactionStatus(req.Status)
	transaction, err := entity.NewTransaction(req.Product, req.Amount, status, uc.generator.RandomTimeOn(day))
	if err != nil {
		return nil, err
	}

	// ========================================================================
	// PASO 2: CONSTRUIR EL AGREGADO DIARIO (solo suma si fue aprobada)
	// ========================================================================
	daily := entity.NewDailyData(day, decimal.Zero, 0)
	if transaction.IsApproved() {
		daily.Sales = transaction.Amount
		daily.Transactions = 1
	}

	// ========================================================================
	// PASO 3: MERGE Y REEMPLAZO COMPLETO DEL DATASET
	// ========================================================================
	dataset, err := uc.datasetRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading dataset: %w", err)
	}

	merged := entity.MergeDataset(dataset, []entity.Transaction{*transaction}, []entity.DailyData{daily})
	if err := uc.datasetRepo.Replace(ctx, merged); err != nil {
		return nil, fmt.Errorf("error replacing dataset: %w", err)
	}

	log.Printf("✅ Transacción registrada: %s (%s, %s)", transaction.ID, transaction.Product, transaction.Status)

	return &response.AddTransactionsResponse{
		AddedCount:        1,
		Transactions:      response.ToTransactionItems([]entity.Transaction{*transaction}),
		Daily:             response.ToDailyDataItems([]entity.DailyData{daily})[0],
		TotalTransactions: len(merged.Transactions),
	}, nil
}
