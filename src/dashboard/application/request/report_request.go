package request

// ReportRequest parámetros del reporte del dashboard
// Las fechas vacías y el rango invertido son casos degenerados definidos
// (reporte en cero), no errores; el formato inválido sí es error
type ReportRequest struct {
	StartDate string   // Día calendario YYYY-MM-DD (vacío = reporte en cero)
	EndDate   string   // Día calendario YYYY-MM-DD (vacío = reporte en cero)
	TimeOfDay []string // Franjas horarias seleccionadas (vacío = sin filtro horario)
}
