package response

import "github.com/shopspring/decimal"

// DashboardReportResponse representa el reporte del dashboard para el
// rango y las franjas horarias seleccionadas
type DashboardReportResponse struct {
	StartDate string   `json:"start_date"` // YYYY-MM-DD
	EndDate   string   `json:"end_date"`   // YYYY-MM-DD
	TimeOfDay []string `json:"time_of_day,omitempty"`

	// Serie diaria continua: un punto por cada día calendario del rango,
	// con ceros donde no hubo ventas (requerido por el gráfico)
	FilteredDailyData []DailyDataItem `json:"filtered_daily_data"`

	// Transacciones filtradas por fecha y franja horaria, todos los
	// estados, en orden descendente por fecha
	TransactionsInView []TransactionItem `json:"transactions_in_view"`

	TotalSales                decimal.Decimal `json:"total_sales"`                 // Suma de montos aprobados
	TotalTransactionsCount    int             `json:"total_transactions_count"`    // Filtradas, cualquier estado
	ApprovedTransactionsCount int             `json:"approved_transactions_count"` // Filtradas y aprobadas
	ConversionRate            string          `json:"conversion_rate"`             // Porcentaje con un decimal, "0.0" sin transacciones
}
