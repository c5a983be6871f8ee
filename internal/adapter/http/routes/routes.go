package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "pizzamaster/docs" // This will be auto-generated
	"pizzamaster/internal/adapter/http/handlers"
	repository2 "pizzamaster/internal/adapter/persistence/repository"
	"pizzamaster/internal/infrastructure/database"
	"pizzamaster/internal/infrastructure/identity"
	"pizzamaster/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

const defaultSessionTTL = 12 * time.Hour

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
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	counterRepo := repository2.NewCounterDynamoRepository(ddb)

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	if err := catalogUseCase.Initialize(ctx); err != nil {
		log.Fatalf("Failed to load catalogs: %v", err)
	}

	sequencer := usecase.NewOrderSequencer(counterRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, catalogUseCase, sequencer)
	if err := orderUseCase.Initialize(ctx); err != nil {
		log.Fatalf("Failed to load order history: %v", err)
	}

	authUseCase := buildAuthUseCase(ctx)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	protected := v1.Group("")
	protected.Use(requireSession(authUseCase))
	addPosRoutes(protected, catalogHandler, orderHandler)
}

func buildAuthUseCase(ctx context.Context) usecase.IAuthUseCase {
	provider, err := identity.NewCognitoProvider(ctx, os.Getenv("COGNITO_CLIENT_ID"))
	if err != nil {
		log.Fatalf("Failed to configure the identity provider: %v", err)
	}

	secret := os.Getenv("SESSION_TOKEN_SECRET")
	if secret == "" {
		log.Fatalf("SESSION_TOKEN_SECRET must be set")
	}

	ttl := defaultSessionTTL
	if raw := os.Getenv("SESSION_TOKEN_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			log.Fatalf("Invalid SESSION_TOKEN_TTL_HOURS: %q", raw)
		}
		ttl = time.Duration(hours) * time.Hour
	}

	return usecase.NewAuthUseCase(provider, secret, ttl)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
