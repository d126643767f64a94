package main

import (
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gasline/gasline/internal/pkg/config"
	"github.com/gasline/gasline/internal/pkg/database"
	"github.com/gasline/gasline/internal/pkg/health"
	jwtpkg "github.com/gasline/gasline/internal/pkg/jwt"
	"github.com/gasline/gasline/internal/pkg/logger"
	"github.com/gasline/gasline/internal/pkg/middleware"
	nsqpkg "github.com/gasline/gasline/internal/pkg/nsq"
	"github.com/gasline/gasline/internal/pkg/server"
	"github.com/gasline/gasline/services/accounts/gateway"
	"github.com/gasline/gasline/services/accounts/handler"
	httpHandler "github.com/gasline/gasline/services/accounts/handler/http"
	"github.com/gasline/gasline/services/accounts/repository"
	"github.com/gasline/gasline/services/accounts/usecase"
)

func main() {
	configPath := flag.String("config", "", "path to an optional env file")
	flag.Parse()

	cfg := config.InitConfig(*configPath)

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("starting application",
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("environment", cfg.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(cfg.NSQ.ProducerAddress)
	if err != nil {
		logger.Fatal("failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	verifier, err := jwtpkg.NewVerifier(cfg.JWT, cfg.IAM.ClientID)
	if err != nil {
		logger.Fatal("failed to initialize token verifier", logger.Err(err))
	}

	accountRepo := repository.NewAccountRepo(cfg, postgresClient.GetDB())
	accountGW := gateway.NewAccountGW(cfg, producer)
	accountUC := usecase.NewAccountUC(accountRepo, accountGW, accountGW, cfg)

	accountHandler := httpHandler.NewAccountHandler(accountUC)
	h := handler.NewHandler(accountHandler, verifier, redisClient.GetClient(), cfg)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, cfg.App.Name, cfg.App.Version)
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Fatal("server stopped unexpectedly", logger.Err(err))
	}
}
