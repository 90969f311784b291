package routes

import (
	"log"
	"strconv"

	_ "home_cleaning/docs" // This will be auto-generated
	"home_cleaning/internal/adapter/http/handlers"
	repository2 "home_cleaning/internal/adapter/persistence/repository"
	"home_cleaning/internal/infrastructure/auth"
	"home_cleaning/internal/infrastructure/database"
	"home_cleaning/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	credentialRepo := repository2.NewCredentialDynamoRepository(ddb)
	requestRepo := repository2.NewServiceRequestDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	acceptTx := repository2.NewQuoteAcceptanceDynamoTx(ddb)
	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	billRepo := repository2.NewBillDynamoRepository(ddb)

	tokenManager, err := auth.NewJWTTokenManagerFromEnv()
	if err != nil {
		log.Fatalf("Session tokens not configured: %v", err)
	}

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, credentialRepo)
	authUseCase := usecase.NewAuthUseCase(credentialRepo, tokenManager)
	requestUseCase := usecase.NewServiceRequestUseCase(requestRepo, customerRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, requestRepo, acceptTx)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo)
	billUseCase := usecase.NewBillUseCase(billRepo, orderRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(customerRepo, requestRepo, quoteRepo, orderRepo, billRepo)

	authHandler := handlers.NewAuthHandler(authUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	requestHandler := handlers.NewServiceRequestHandler(requestUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	billHandler := handlers.NewBillHandler(billUseCase)
	dashboardHandler := handlers.NewDashboardHandler(analyticsUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, customerHandler)
	addCleaningRoutes(v1, requestHandler, quoteHandler, orderHandler, billHandler)
	addDashboardRoutes(v1, dashboardHandler, tokenManager)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
