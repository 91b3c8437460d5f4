package entity

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// BatchGenerator genera lotes de transacciones para la carga masiva y
// para el seed de datos de muestra
type BatchGenerator struct {
	rand *rand.Rand
}

// NewBatchGenerator crea un generador con semilla basada en el reloj
func NewBatchGenerator() *BatchGenerator {
	return NewBatchGeneratorWithSeed(time.Now().UnixNano())
}

// NewBatchGeneratorWithSeed crea un generador con semilla fija (para tests)
func NewBatchGeneratorWithSeed(seed int64) *BatchGenerator {
	return &BatchGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// BatchParams parámetros para generar un lote de transacciones
type BatchParams struct {
	Product         string
	UnitAmount      decimal.Decimal
	Quantity        int
	Day             Day
	RandomizeStatus bool    // Si es false, todas las transacciones quedan APPROVED
	ApprovalRate    float64 // Tasa de aprobación objetivo 0-100 (solo con RandomizeStatus)
}

// GenerateBatch genera n transacciones sobre el día objetivo y un único
// agregado diario que resume los miembros aprobados del lote
//
// El estado de cada transacción se sortea de forma independiente: con
// RandomizeStatus, cada una tira un uniforme en [0,100) y queda APPROVED
// si el valor es <= ApprovalRate, si no PENDING. El conteo de aprobadas
// de un lote de tamaño n sigue una binomial, no un corte exacto n*r/100
func (g *BatchGenerator) GenerateBatch(p BatchParams) ([]Transaction, DailyData, error) {
	transactions := make([]Transaction, 0, p.Quantity)
	approvedSales := decimal.Zero
	approvedCount := 0

	for i := 0; i < p.Quantity; i++ {
		status := StatusApproved
		if p.RandomizeStatus {
			if g.rand.Float64()*100 > p.ApprovalRate {
				status = StatusPending
			}
		}

		tx, err := NewTransaction(p.Product, p.UnitAmount, status, g.RandomTimeOn(p.Day))
		if err != nil {
			return nil, DailyData{}, err
		}
		transactions = append(transactions, *tx)

		if status == StatusApproved {
			approvedSales = approvedSales.Add(p.UnitAmount)
			approvedCount++
		}
	}

	daily := NewDailyData(p.Day, approvedSales, approvedCount)
	return transactions, daily, nil
}

// RandomTimeOn retorna un instante con hora, minuto y segundo uniformes
// dentro del día objetivo
func (g *BatchGenerator) RandomTimeOn(day Day) time.Time {
	start := day.Start()
	return time.Date(
		start.Year(), start.Month(), start.Day(),
		g.rand.Intn(24), g.rand.Intn(60), g.rand.Intn(60), 0,
		time.Local,
	)
}

// RandomAmountBetween retorna un monto entero uniforme en [min, max]
func (g *BatchGenerator) RandomAmountBetween(min, max int) decimal.Decimal {
	return decimal.NewFromInt(int64(min + g.rand.Intn(max-min+1)))
}

// Intn expone el generador subyacente para selecciones uniformes
func (g *BatchGenerator) Intn(n int) int {
	return g.rand.Intn(n)
}
