package routes

import (
	"context"
	"log"
	"os"
	_ "restock_service/docs" // generated by swag init
	"restock_service/internal/adapter/http/handlers"
	"restock_service/internal/adapter/persistence/lock"
	"restock_service/internal/adapter/persistence/repository"
	"restock_service/internal/infrastructure/cache"
	"restock_service/internal/infrastructure/cloud"
	"restock_service/internal/infrastructure/database"
	"restock_service/internal/infrastructure/mailer"
	"restock_service/internal/usecase"
	"restock_service/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = "8080"

// Run will start the server
func Run() {
	router := NewRouter()

	port := cloud.GetenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires infrastructure, use cases and handlers into a gin engine.
func NewRouter() *gin.Engine {
	ctx := context.Background()
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	sessionRepo := newSessionRepository(ctx)
	sender := newEmailSender(ctx)
	locker := newSessionLocker(ctx)

	sessionUseCase := usecase.NewRestockSessionUseCase(sessionRepo, sender, locker, os.Getenv("STORE_NAME"))
	sessionHandler := handlers.NewRestockSessionHandler(sessionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, sessionHandler)
	return router
}

func newSessionRepository(ctx context.Context) interfaces.IRestockSessionRepository {
	switch store := strings.ToLower(cloud.GetenvDefault("SESSION_STORE", "dynamodb")); store {
	case "mysql":
		db, err := database.ConnectMySQL(ctx, os.Getenv("MYSQL_DSN"))
		if err != nil {
			log.Fatalf("failed to connect mysql: %v", err)
		}
		repo := repository.NewRestockSessionMySQLRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("failed to prepare mysql schema: %v", err)
		}
		log.Printf("[routes] session store: mysql")
		return repo
	case "dynamodb":
		log.Printf("[routes] session store: dynamodb")
		return repository.NewRestockSessionDynamoRepository(database.ConnectDynamoDB())
	default:
		log.Fatalf("unknown SESSION_STORE %q", store)
		return nil
	}
}

func newEmailSender(ctx context.Context) interfaces.IEmailSender {
	cfg, err := cloud.NewAWSConfigFromEnv(ctx)
	if err != nil {
		log.Printf("[routes] email sender not configured: %v", err)
		return nil
	}
	m, err := mailer.NewSESMailer(cfg, os.Getenv("SES_ENDPOINT"), os.Getenv("MAIL_FROM_ADDRESS"))
	if err != nil {
		log.Printf("[routes] email sender not configured: %v", err)
		return nil
	}
	return m
}

func newSessionLocker(ctx context.Context) interfaces.ISessionLocker {
	client, err := cache.ConnectRedis(ctx)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	if client == nil {
		log.Printf("[routes] REDIS_ADDR not set; session writes run unlocked")
		return nil
	}

	ttl := lock.DefaultSessionLockTTL
	if raw := os.Getenv("SESSION_LOCK_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid SESSION_LOCK_TTL %q: %v", raw, err)
		}
		ttl = d
	}
	return lock.NewRedisSessionLocker(client, ttl)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
