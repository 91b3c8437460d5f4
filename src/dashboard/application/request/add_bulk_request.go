package request

import "github.com/shopspring/decimal"

// AddBulkRequest request para registrar un lote de ventas
// HITO B - Carga masiva con randomización opcional de estados
type AddBulkRequest struct {
	Product         string          `json:"product" binding:"required"`
	UnitAmount      decimal.Decimal `json:"unit_amount" binding:"required"`  // Monto unitario > 0
	Quantity        int             `json:"quantity" binding:"required"`     // Cantidad de transacciones > 0
	Date            string          `json:"date" binding:"required"`         // Día calendario YYYY-MM-DD
	RandomizeStatus bool            `json:"randomize_status"`                // Sortear estados por transacción
	ApprovalRate    float64         `json:"approval_rate"`                   // Tasa objetivo 0-100 (solo con randomize_status)
}
