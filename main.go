package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apiConfig "dashboard/src/api/config"
	dashboardUseCase "dashboard/src/dashboard/application/usecase"
	"dashboard/src/dashboard/domain/entity"
	dashboardController "dashboard/src/dashboard/infrastructure/controller"
	dashboardNotifier "dashboard/src/dashboard/infrastructure/notifier"
	dashboardPersistence "dashboard/src/dashboard/infrastructure/persistence"
	dashboardSeed "dashboard/src/dashboard/infrastructure/seed"
	sharedConfig "dashboard/src/shared/infrastructure/config"
	sharedMetrics "dashboard/src/shared/infrastructure/metrics"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 Sales Dashboard Service - Iniciando...")

	// Cargar variables de entorno desde .env si existe
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	var m *sharedMetrics.Metrics
	if os.Getenv("PROMETHEUS_ENABLED") == "true" {
		log.Println("Registering /metrics endpoint for Sales Dashboard service")
		m = sharedMetrics.NewMetrics("sales")
		router.Use(sharedMetrics.GinMiddleware(m))
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		log.Println("/metrics endpoint registered successfully")
	} else {
		log.Println("Prometheus metrics disabled for Sales Dashboard service")
	}

	// Configurar CORS y otros middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.Version = "1.0.0"
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulo Dashboard
	setupDashboardModule(v1, m)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor Sales Dashboard iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupDashboardModule configura el módulo Dashboard
func setupDashboardModule(router *gin.RouterGroup, m *sharedMetrics.Metrics) {
	log.Println("Configurando módulo Dashboard...")

	// Generador compartido por carga masiva y datos de muestra
	generator := entity.NewBatchGenerator()

	// Dataset semilla: sintético por defecto, vacío con SEED_SAMPLE_DATA=false
	sampleGen := dashboardSeed.NewSampleDataGenerator(generator)
	seedFn := dashboardPersistence.SeedFunc(sampleGen.Generate)
	if getEnv("SEED_SAMPLE_DATA", "true") != "true" {
		log.Println("Seed de datos de muestra deshabilitado, arrancando vacío")
		seedFn = sampleGen.GenerateEmpty
	}

	// Repositorio en memoria: dueño único del dataset canónico
	datasetRepo := dashboardPersistence.NewDatasetMemoryRepository(seedFn)

	// Cliente del gateway de notificaciones push
	pushClient := dashboardNotifier.NewPushClient()

	// Crear casos de uso
	addTransactionUC := dashboardUseCase.NewAddTransactionUseCase(datasetRepo, generator)
	addBulkUC := dashboardUseCase.NewAddBulkTransactionsUseCase(datasetRepo, generator)
	resetUC := dashboardUseCase.NewResetDatasetUseCase(datasetRepo)
	getDatasetUC := dashboardUseCase.NewGetDatasetUseCase(datasetRepo)
	dashboardReportUC := dashboardUseCase.NewDashboardReportUseCase(datasetRepo)
	sendNotificationUC := dashboardUseCase.NewSendNotificationUseCase(pushClient)

	// Crear controladores
	transactionCtrl := dashboardController.NewTransactionController(addTransactionUC, addBulkUC, resetUC, getDatasetUC, m)
	reportCtrl := dashboardController.NewReportController(dashboardReportUC, m)
	notificationCtrl := dashboardController.NewNotificationController(sendNotificationUC)

	// Registrar rutas
	transactionCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)
	notificationCtrl.RegisterRoutes(router)

	log.Println("Módulo Dashboard configurado exitosamente")
}
