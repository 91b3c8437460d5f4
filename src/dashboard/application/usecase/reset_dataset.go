package usecase

import (
	"context"
	"log"

	"dashboard/src/dashboard/application/response"
	"dashboard/src/dashboard/domain/port"
)

// ResetDatasetUseCase caso de uso para descartar todos los datos y
// volver al dataset semilla
type ResetDatasetUseCase struct {
	datasetRepo port.DatasetRepository
}

// NewResetDatasetUseCase crea una nueva instancia del caso de uso
func NewResetDatasetUseCase(datasetRepo port.DatasetRepository) *ResetDatasetUseCase {
	return &ResetDatasetUseCase{datasetRepo: datasetRepo}
}

// Execute reinicia el dataset y retorna el estado resultante
func (uc *ResetDatasetUseCase) Execute(ctx context.Context) (*response.DatasetResponse, error) {
	dataset, err := uc.datasetRepo.Reset(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("🔄 Dataset reiniciado: %d transacciones", len(dataset.Transactions))
	return response.ToDatasetResponse(dataset), nil
}
