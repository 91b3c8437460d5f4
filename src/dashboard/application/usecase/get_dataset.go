package usecase

import (
	"context"

	"dashboard/src/dashboard/application/response"
	"dashboard/src/dashboard/domain/port"
)

// GetDatasetUseCase caso de uso para consultar el dataset canónico
type GetDatasetUseCase struct {
	datasetRepo port.DatasetRepository
}

// NewGetDatasetUseCase crea una nueva instancia del caso de uso
func NewGetDatasetUseCase(datasetRepo port.DatasetRepository) *GetDatasetUseCase {
	return &GetDatasetUseCase{datasetRepo: datasetRepo}
}

// Execute retorna el dataset actual como DTO
func (uc *GetDatasetUseCase) Execute(ctx context.Context) (*response.DatasetResponse, error) {
	dataset, err := uc.datasetRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return response.ToDatasetResponse(dataset), nil
}
