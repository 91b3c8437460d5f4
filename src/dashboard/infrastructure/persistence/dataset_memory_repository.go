package persistence

import (
	"context"
	"log"
	"sync"

	"dashboard/src/dashboard/domain/entity"
)

// SeedFunc produce el dataset inicial (sintético o vacío)
type SeedFunc func() entity.Dataset

// DatasetMemoryRepository repositorio en memoria del dataset canónico
// No hay persistencia durable: cada arranque vuelve a sembrar los datos
// El dataset se reemplaza completo en cada acción, nunca se muta in-place
type DatasetMemoryRepository struct {
	dataset entity.Dataset
	seed    SeedFunc
	mu      sync.RWMutex
}

// NewDatasetMemoryRepository crea el repositorio sembrando el dataset inicial
func NewDatasetMemoryRepository(seed SeedFunc) *DatasetMemoryRepository {
	repo := &DatasetMemoryRepository{seed: seed}
	repo.dataset = seed()
	log.Printf("✅ Dataset inicial sembrado: %d transacciones, %d días", len(repo.dataset.Transactions), len(repo.dataset.DailyData))
	return repo
}

// Get retorna una copia del dataset actual
// Se copian los slices para que ningún llamador pueda mutar el estado
// compartido por fuera de Replace
func (r *DatasetMemoryRepository) Get(_ context.Context) (entity.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyDataset(r.dataset), nil
}

// Replace reemplaza el dataset completo
func (r *DatasetMemoryRepository) Replace(_ context.Context, dataset entity.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dataset = copyDataset(dataset)
	return nil
}

// Reset descarta todo y vuelve al dataset semilla
func (r *DatasetMemoryRepository) Reset(_ context.Context) (entity.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dataset = r.seed()
	return copyDataset(r.dataset), nil
}

func copyDataset(src entity.Dataset) entity.Dataset {
	dst := entity.Dataset{
		Transactions: make([]entity.Transaction, len(src.Transactions)),
		DailyData:    make([]entity.DailyData, len(src.DailyData)),
	}
	copy(dst.Transactions, src.Transactions)
	copy(dst.DailyData, src.DailyData)
	return dst
}
