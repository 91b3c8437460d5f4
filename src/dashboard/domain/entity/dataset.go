package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Dataset representa el conjunto canónico de datos del dashboard
// Invariante: DailyData es derivable de Transactions por la regla de
// agregación diaria (suma de montos aprobados por día calendario).
// El Dataset nunca se muta in-place: cada acción aceptada lo reemplaza
// completo por el resultado de MergeDataset
type Dataset struct {
	Transactions []Transaction `json:"transactions"` // Ordenadas por fecha descendente
	DailyData    []DailyData   `json:"daily_data"`   // Ordenados por fecha ascendente
}

// NewEmptyDataset crea un dataset vacío
func NewEmptyDataset() Dataset {
	return Dataset{
		Transactions: make([]Transaction, 0),
		DailyData:    make([]DailyData, 0),
	}
}

// MergeDataset combina un dataset base con un lote entrante de
// transacciones y agregados diarios, produciendo un dataset nuevo
// Función pura: no modifica base ni los lotes entrantes
//
// Reglas:
//   - Transacciones: entrantes ++ base, orden estable por fecha descendente
//   - Agregados diarios: mapa sembrado desde base, cada entrada entrante
//     suma sales y transactions sobre su día (creando entrada en cero si
//     no existe), re-aplanado en orden ascendente
//
// El llamador es responsable de la unicidad de los IDs entrantes;
// MergeDataset no deduplica
func MergeDataset(base Dataset, incoming []Transaction, incomingDaily []DailyData) Dataset {
	// ========================================================================
	// PASO 1: COMBINAR TRANSACCIONES (entrantes primero, orden estable)
	// ========================================================================
	transactions := make([]Transaction, 0, len(incoming)+len(base.Transactions))
	transactions = append(transactions, incoming...)
	transactions = append(transactions, base.Transactions...)

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})

	// ========================================================================
	// PASO 2: COMBINAR AGREGADOS DIARIOS (suma por día calendario)
	// ========================================================================
	dailyMap := make(map[Day]DailyData, len(base.DailyData)+len(incomingDaily))
	for _, d := range base.DailyData {
		dailyMap[d.Date] = d
	}
	for _, d := range incomingDaily {
		entry, ok := dailyMap[d.Date]
		if !ok {
			entry = NewDailyData(d.Date, decimal.Zero, 0)
		}
		entry.Sales = entry.Sales.Add(d.Sales)
		entry.Transactions += d.Transactions
		dailyMap[d.Date] = entry
	}

	// ========================================================================
	// PASO 3: RE-APLANAR EL MAPA EN ORDEN ASCENDENTE
	// ========================================================================
	dailyData := make([]DailyData, 0, len(dailyMap))
	for _, entry := range dailyMap {
		dailyData = append(dailyData, entry)
	}
	sort.Slice(dailyData, func(i, j int) bool {
		return dailyData[i].Date.Before(dailyData[j].Date)
	})

	return Dataset{
		Transactions: transactions,
		DailyData:    dailyData,
	}
}

// TotalDailySales retorna la suma de ventas sobre todos los agregados diarios
func (d Dataset) TotalDailySales() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range d.DailyData {
		total = total.Add(entry.Sales)
	}
	return total
}
