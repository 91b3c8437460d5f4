package response

// AddTransactionsResponse respuesta al registrar una o varias ventas
type AddTransactionsResponse struct {
	AddedCount        int               `json:"added_count"`        // Transacciones agregadas en esta acción
	Transactions      []TransactionItem `json:"transactions"`       // Las transacciones recién creadas
	Daily             DailyDataItem     `json:"daily"`              // Resumen diario del lote (solo aprobadas)
	TotalTransactions int               `json:"total_transactions"` // Total del dataset luego del merge
}
