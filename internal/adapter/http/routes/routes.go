package routes

import (
	"log"
	"log/slog"
	"os"
	"strconv"

	_ "fieldjobs/docs" // This will be auto-generated
	"fieldjobs/internal/adapter/http/handlers"
	"fieldjobs/internal/adapter/http/middleware"
	repository2 "fieldjobs/internal/adapter/persistence/repository"
	"fieldjobs/internal/auth"
	"fieldjobs/internal/domain/pricing"
	"fieldjobs/internal/infrastructure/database"
	"fieldjobs/internal/infrastructure/payments"
	"fieldjobs/internal/infrastructure/push"
	"fieldjobs/internal/notify"
	"fieldjobs/internal/realtime"
	"fieldjobs/internal/usecase"
	"fieldjobs/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

const defaultCurrency = "USD"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	queue := getRoutes()
	queue.Start()
	defer queue.Stop()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() *notify.Queue {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	techRepo := repository2.NewTechnicianProfileDynamoRepository(ddb)
	changeRepo := repository2.NewChangeRequestDynamoRepository(ddb)
	chatRepo := repository2.NewChatMessageDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	authenticator := buildAuthenticator()

	hub := realtime.NewHub(logger)
	queue := notify.NewQueue(push.NewLogSender(), logger)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	currency := os.Getenv("JOB_CURRENCY")
	if currency == "" {
		currency = defaultCurrency
	}

	rates := pricing.NewFlatRateTable()

	jobUseCase := usecase.NewJobUseCase(jobRepo, techRepo, changeRepo, chatRepo, rates, hub, queue, currency)
	changeUseCase := usecase.NewEstimateChangeUseCase(jobRepo, changeRepo, hub, queue)
	techUseCase := usecase.NewTechnicianUseCase(techRepo, hub)
	chatUseCase := usecase.NewChatUseCase(jobRepo, chatRepo, hub, queue)
	paymentUseCase := usecase.NewPaymentUseCase(jobRepo, paymentRepo, paymentGateway)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	changeHandler := handlers.NewEstimateChangeHandler(changeUseCase)
	techHandler := handlers.NewTechnicianHandler(techUseCase)
	chatHandler := handlers.NewChatHandler(chatUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	rtServer := realtime.NewServer(hub, authenticator, jobRepo, logger)
	router.GET("/ws", func(c *gin.Context) {
		rtServer.Handle(c.Writer, c.Request)
	})

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.RequireAuth(authenticator))
	addJobRoutes(authed, jobHandler, changeHandler, chatHandler, paymentHandler)
	addTechnicianRoutes(authed, techHandler)

	return queue
}

// buildAuthenticator wires the static dev token map from AUTH_TOKENS.
// Production swaps in a JWT verifier behind the same interface.
func buildAuthenticator() auth.Authenticator {
	tokens, err := auth.ParseStaticTokens(os.Getenv("AUTH_TOKENS"))
	if err != nil {
		log.Fatalf("Failed to parse AUTH_TOKENS: %v", err)
	}
	if len(tokens) == 0 {
		log.Printf("[auth] AUTH_TOKENS is empty; every authenticated route will reject")
	}
	return auth.NewStaticTokenAuthenticator(tokens)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
