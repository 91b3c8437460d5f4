package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dashboard/src/dashboard/application/request"
	"dashboard/src/dashboard/application/usecase"
	"dashboard/src/dashboard/domain/entity"
	"dashboard/src/shared/infrastructure/metrics"
)

// TransactionController maneja las peticiones HTTP para transacciones
type TransactionController struct {
	addTransactionUC *usecase.AddTransactionUseCase
	addBulkUC        *usecase.AddBulkTransactionsUseCase
	resetUC          *usecase.ResetDatasetUseCase
	getDatasetUC     *usecase.GetDatasetUseCase
	metrics          *metrics.Metrics
}

// NewTransactionController crea una nueva instancia del controlador
func NewTransactionController(
	addTransactionUC *usecase.AddTransactionUseCase,
	addBulkUC *usecase.AddBulkTransactionsUseCase,
	resetUC *usecase.ResetDatasetUseCase,
	getDatasetUC *usecase.GetDatasetUseCase,
	m *metrics.Metrics,
) *TransactionController {
	return &TransactionController{
		addTransactionUC: addTransactionUC,
		addBulkUC:        addBulkUC,
		resetUC:          resetUC,
		getDatasetUC:     getDatasetUC,
		metrics:          m,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *TransactionController) RegisterRoutes(router *gin.RouterGroup) {
	transactions := router.Group("/transactions")
	{
		transactions.GET("", c.GetDataset)
		transactions.POST("", c.AddTransaction)
		transactions.POST("/bulk", c.AddBulkTransactions)
		transactions.POST("/reset", c.ResetDataset)
	}

	log.Println("Rutas Transaction disponibles:")
	log.Println("  GET    /api/v1/transactions")
	log.Println("  POST   /api/v1/transactions")
	log.Println("  POST   /api/v1/transactions/bulk")
	log.Println("  POST   /api/v1/transactions/reset")
}

// GetDataset retorna el dataset canónico completo
func (c *TransactionController) GetDataset(ctx *gin.Context) {
	resp, err := c.getDatasetUC.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error loading dataset",
			"details": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AddTransaction registra una venta individual
func (c *TransactionController) AddTransaction(ctx *gin.Context) {
	var req request.AddTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.addTransactionUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		respondUseCaseError(ctx, err)
		return
	}

	c.metrics.CountTransactions(req.Status, 1)
	ctx.JSON(http.StatusCreated, resp)
}

// AddBulkTransactions registra un lote de ventas
func (c *TransactionController) AddBulkTransactions(ctx *gin.Context) {
	var req request.AddBulkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.addBulkUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		respondUseCaseError(ctx, err)
		return
	}

	c.metrics.CountTransactions(string(entity.StatusApproved), resp.Daily.Transactions)
	c.metrics.CountTransactions(string(entity.StatusPending), resp.AddedCount-resp.Daily.Transactions)
	ctx.JSON(http.StatusCreated, resp)
}

// ResetDataset descarta todos los datos y vuelve al dataset semilla
func (c *TransactionController) ResetDataset(ctx *gin.Context) {
	resp, err := c.resetUC.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error resetting dataset",
			"details": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// respondUseCaseError mapea errores de dominio a códigos HTTP
// Los errores de validación son corregibles por el usuario → 400
func respondUseCaseError(ctx *gin.Context, err error) {
	validationErrors := []error{
		entity.ErrProductRequired,
		entity.ErrInvalidAmount,
		entity.ErrInvalidStatus,
		entity.ErrDateRequired,
		entity.ErrInvalidQuantity,
		entity.ErrInvalidApprovalRate,
		entity.ErrInvalidTimeOfDay,
		entity.ErrNotificationMessageRequired,
	}
	for _, validationErr := range validationErrors {
		if errors.Is(err, validationErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	// Formato de fecha inválido también es un error del usuario
	if containsInvalidDate(err) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid date format",
			"details": err.Error(),
		})
		return
	}

	log.Printf("Error executing use case: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal error",
		"details": err.Error(),
	})
}

func containsInvalidDate(err error) bool {
	return strings.Contains(err.Error(), "invalid date format")
}
