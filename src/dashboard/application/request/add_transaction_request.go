package request

import "github.com/shopspring/decimal"

// AddTransactionRequest request para registrar una venta individual
type AddTransactionRequest struct {
	Product string          `json:"product" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`          // Monto > 0
	Status  string          `json:"status" binding:"required"`          // APPROVED | PENDING | DECLINED
	Date    string          `json:"date" binding:"required"`            // Día calendario YYYY-MM-DD
}
