package seed

import (
	"time"

	"dashboard/src/dashboard/domain/entity"
)

// Catálogo fijo de productos para los datos de muestra
var sampleProducts = []string{
	"Sérum Vitamina C",
	"Crema Hidratante Facial",
	"Protector Solar FPS 50",
	"Máscara de Pestañas",
	"Base Líquida Matte",
	"Corrector Alta Cobertura",
	"Labial Rojo Intenso",
	"Paleta de Sombras Nude",
	"Delineador en Gel",
	"Agua Micelar",
}

// Cantidad de transacciones sintéticas y ventana de días hacia atrás
const (
	sampleTransactionCount = 75
	sampleWindowDays       = 30
)

// SampleDataGenerator genera el dataset sintético de muestra
type SampleDataGenerator struct {
	generator *entity.BatchGenerator
}

// NewSampleDataGenerator crea un generador de datos de muestra
func NewSampleDataGenerator(generator *entity.BatchGenerator) *SampleDataGenerator {
	return &SampleDataGenerator{generator: generator}
}

// Generate produce un dataset con 75 transacciones distribuidas en los
// últimos 30 días: montos entre 50 y 499, estados con peso 3 aprobadas
// por cada pendiente y rechazada
//
// Los agregados diarios se derivan pasando cada transacción aprobada por
// MergeDataset, de modo que el invariante del dataset vale por construcción
func (g *SampleDataGenerator) Generate() entity.Dataset {
	statusOptions := []entity.TransactionStatus{
		entity.StatusApproved,
		entity.StatusApproved,
		entity.StatusApproved,
		entity.StatusPending,
		entity.StatusDeclined,
	}

	today := entity.NewDay(time.Now())
	transactions := make([]entity.Transaction, 0, sampleTransactionCount)
	dailyEntries := make([]entity.DailyData, 0, sampleTransactionCount)

	for i := 0; i < sampleTransactionCount; i++ {
		day := today.AddDays(-g.generator.Intn(sampleWindowDays + 1))
		amount := g.generator.RandomAmountBetween(50, 499)
		status := statusOptions[g.generator.Intn(len(statusOptions))]
		product := sampleProducts[g.generator.Intn(len(sampleProducts))]

		tx, err := entity.NewTransaction(product, amount, status, g.generator.RandomTimeOn(day))
		if err != nil {
			// El catálogo y los rangos son fijos, no puede fallar
			continue
		}
		transactions = append(transactions, *tx)

		if tx.IsApproved() {
			dailyEntries = append(dailyEntries, entity.NewDailyData(tx.Day(), tx.Amount, 1))
		}
	}

	return entity.MergeDataset(entity.NewEmptyDataset(), transactions, dailyEntries)
}

// GenerateEmpty produce un dataset vacío (arranque sin datos de muestra)
func (g *SampleDataGenerator) GenerateEmpty() entity.Dataset {
	return entity.NewEmptyDataset()
}
