package port

import (
	"context"

	"dashboard/src/dashboard/domain/entity"
)

// DatasetRepository define el contrato para el dueño único del dataset
// canónico del dashboard. El dataset solo se reemplaza completo, nunca
// se muta in-place
type DatasetRepository interface {
	// Get retorna el dataset canónico actual
	Get(ctx context.Context) (entity.Dataset, error)

	// Replace reemplaza el dataset completo por uno nuevo
	Replace(ctx context.Context, dataset entity.Dataset) error

	// Reset descarta todos los datos y vuelve al dataset semilla
	// (sintético o vacío, según la configuración del bootstrap)
	Reset(ctx context.Context) (entity.Dataset, error)
}
