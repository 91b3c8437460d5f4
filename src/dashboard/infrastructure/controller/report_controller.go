package controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dashboard/src/dashboard/application/request"
	"dashboard/src/dashboard/application/usecase"
	"dashboard/src/shared/infrastructure/metrics"
)

// ReportController maneja las peticiones HTTP para reportes
// HITO C - Reporte del dashboard
type ReportController struct {
	dashboardReportUC *usecase.DashboardReportUseCase
	metrics           *metrics.Metrics
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(dashboardReportUC *usecase.DashboardReportUseCase, m *metrics.Metrics) *ReportController {
	return &ReportController{
		dashboardReportUC: dashboardReportUC,
		metrics:           m,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/dashboard", c.DashboardReport)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET    /api/v1/reports/dashboard?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD&time_of_day=MORNING,EVENING")
}

// DashboardReport genera el reporte del dashboard para el rango pedido
func (c *ReportController) DashboardReport(ctx *gin.Context) {
	// ========================================================================
	// PASO 1: Leer query parameters (fechas vacías = reporte en cero)
	// ========================================================================
	req := &request.ReportRequest{
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	// Las franjas horarias llegan como lista separada por comas
	if raw := ctx.Query("time_of_day"); raw != "" {
		for _, value := range strings.Split(raw, ",") {
			if value = strings.TrimSpace(value); value != "" {
				req.TimeOfDay = append(req.TimeOfDay, value)
			}
		}
	}

	// ========================================================================
	// PASO 2: Ejecutar use case
	// ========================================================================
	resp, err := c.dashboardReportUC.Execute(ctx.Request.Context(), req)
	if err != nil {
		respondUseCaseError(ctx, err)
		return
	}

	// ========================================================================
	// PASO 3: Responder exitosamente
	// ========================================================================
	c.metrics.CountReport()
	ctx.JSON(http.StatusOK, resp)
}
