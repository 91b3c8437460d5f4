package entity

import "github.com/shopspring/decimal"

// DailyData representa el agregado de ventas aprobadas de un día calendario
// Invariante: Sales y Transactions equivalen a la suma sobre las
// transacciones aprobadas cuya fecha cae en ese día
type DailyData struct {
	Date         Day             `json:"date"`         // Día calendario (YYYY-MM-DD)
	Sales        decimal.Decimal `json:"sales"`        // Suma de montos aprobados
	Transactions int             `json:"transactions"` // Cantidad de transacciones aprobadas
}

// NewDailyData crea un agregado diario para un día calendario
func NewDailyData(date Day, sales decimal.Decimal, transactions int) DailyData {
	return DailyData{
		Date:         date,
		Sales:        sales,
		Transactions: transactions,
	}
}
