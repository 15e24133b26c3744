package routes

import (
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/renatoambrosi/quizbacken/docs" // swag-generated OpenAPI spec
	"github.com/renatoambrosi/quizbacken/internal/adapter/http/handlers"
	"github.com/renatoambrosi/quizbacken/internal/adapter/http/middleware"
	"github.com/renatoambrosi/quizbacken/internal/adapter/persistence/repository"
	"github.com/renatoambrosi/quizbacken/internal/infrastructure/cache"
	"github.com/renatoambrosi/quizbacken/internal/infrastructure/database"
	"github.com/renatoambrosi/quizbacken/internal/infrastructure/notifications"
	"github.com/renatoambrosi/quizbacken/internal/infrastructure/payments"
	"github.com/renatoambrosi/quizbacken/internal/metrics"
	"github.com/renatoambrosi/quizbacken/internal/usecase"
	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const idempotencyCacheTTL = 24 * time.Hour

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	paymentMetrics := metrics.NewPaymentMetrics(registry)

	ddb := database.ConnectDynamoDB()
	intentRepo := repository.NewPaymentIntentDynamoRepository(ddb)

	var gateway interfaces.IPaymentProcessor
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}
	gateway = mpGateway

	// Notification channels share one HTTP client, separate from the
	// gateway's so a slow email API never eats into payment timeouts.
	notifierClient := &http.Client{Timeout: 10 * time.Second}
	dispatcher := usecase.NewNotificationDispatcher(paymentMetrics,
		notifications.NewBrevoEmailNotifier(
			os.Getenv("BREVO_API_KEY"),
			getenvDefault("SENDER_EMAIL", "sistema@suellenseragi.com.br"),
			getenvDefault("EMAIL_RESULT_URL", "https://www.suellenseragi.com.br/resultado1"),
			notifierClient,
		),
		notifications.NewPushoverNotifier(
			os.Getenv("PUSHOVER_APP_TOKEN"),
			os.Getenv("PUSHOVER_USER_KEY"),
			notifierClient,
		),
	)

	reconciliation := usecase.NewReconciliationUseCase(intentRepo, gateway, dispatcher, paymentMetrics)
	checkout := usecase.NewCheckoutUseCase(intentRepo, gateway, reconciliation, paymentMetrics, usecase.CheckoutConfig{
		BaseURL:             getenvDefault("BASE_URL", "http://localhost:8080"),
		StatementDescriptor: "TESTE PROSPERIDADE",
		ProductID:           "teste-prosperidade-001",
		ProductTitle:        "Teste de Prosperidade",
		ProductDescription:  "Acesso ao resultado personalizado do teste de prosperidade",
		ProductCategoryID:   "services",
		ProductPictureURL:   "https://www.suellenseragi.com.br/logo.png",
	})

	resultURL := getenvDefault("RESULT_URL", "https://www.suellenseragi.com.br/resultado2")
	fallbackURL := getenvDefault("FALLBACK_URL", "https://quizfront.vercel.app")

	paymentHandler := handlers.NewPaymentHandler(checkout, reconciliation, resultURL)
	webhookHandler := handlers.NewWebhookHandler(reconciliation)
	callbackHandler := handlers.NewCallbackHandler(resultURL, fallbackURL)
	healthHandler := handlers.NewHealthHandler()

	router.GET("/health", healthHandler.Health)
	router.GET("/status", healthHandler.Status)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	api.Use(middleware.Idempotency(cache.NewRedisClientFromEnv(), idempotencyCacheTTL))
	addPaymentRoutes(api, paymentHandler, webhookHandler, callbackHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
