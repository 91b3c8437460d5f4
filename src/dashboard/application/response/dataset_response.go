package response

import (
	"time"

	"github.com/shopspring/decimal"

	"dashboard/src/dashboard/domain/entity"
)

// TransactionItem representa una transacción en las respuestas
type TransactionItem struct {
	ID      string          `json:"id"`
	Product string          `json:"product"`
	Date    time.Time       `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Status  string          `json:"status"`
}

// DailyDataItem representa un punto de la serie diaria
type DailyDataItem struct {
	Date         string          `json:"date"`         // YYYY-MM-DD
	Sales        decimal.Decimal `json:"sales"`        // Ventas aprobadas del día
	Transactions int             `json:"transactions"` // Transacciones aprobadas del día
}

// DatasetResponse representa el dataset canónico completo
type DatasetResponse struct {
	Transactions      []TransactionItem `json:"transactions"`
	DailyData         []DailyDataItem   `json:"daily_data"`
	TotalTransactions int               `json:"total_transactions"`
}

// ToTransactionItems mapea entidades a DTOs de respuesta
func ToTransactionItems(transactions []entity.Transaction) []TransactionItem {
	items := make([]TransactionItem, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, TransactionItem{
			ID:      t.ID,
			Product: t.Product,
			Date:    t.Date,
			Amount:  t.Amount,
			Status:  string(t.Status),
		})
	}
	return items
}

// ToDailyDataItems mapea agregados diarios a DTOs de respuesta
func ToDailyDataItems(daily []entity.DailyData) []DailyDataItem {
	items := make([]DailyDataItem, 0, len(daily))
	for _, d := range daily {
		items = append(items, DailyDataItem{
			Date:         d.Date.String(),
			Sales:        d.Sales,
			Transactions: d.Transactions,
		})
	}
	return items
}

// ToDatasetResponse mapea el dataset completo a su DTO
func ToDatasetResponse(dataset entity.Dataset) *DatasetResponse {
	return &DatasetResponse{
		Transactions:      ToTransactionItems(dataset.Transactions),
		DailyData:         ToDailyDataItems(dataset.DailyData),
		TotalTransactions: len(dataset.Transactions),
	}
}
