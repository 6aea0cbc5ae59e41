package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/emergency_dispatch/internal/config"
	v1 "github.com/shenikar/emergency_dispatch/internal/handler/http/v1"
	"github.com/shenikar/emergency_dispatch/internal/repository"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/shenikar/emergency_dispatch/pkg/logger"
	"github.com/shenikar/emergency_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/emergency_dispatch/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/emergency_dispatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Emergency Dispatch API
// @version 1.0
// @description Backend for coordinating emergency response: ambulances, hospitals, volunteers and emergencies.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Схема создается до того, как сервер начнет принимать запросы
	if err := postgres.Migrate(cfg.DatabaseURL, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Издатель событий и воркер доставки вебхуков
	publisher := webhook.NewRedisPublisher(redisClient)
	worker := webhook.NewWorker(redisClient, log, cfg)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Run(ctx)
	}()

	// Инициализация репозиториев
	ambulanceRepo := repository.NewAmbulanceRepository(dbpool)
	hospitalRepo := repository.NewHospitalRepository(dbpool)
	volunteerRepo := repository.NewVolunteerRepository(dbpool)
	emergencyRepo := repository.NewEmergencyRepository(dbpool, redisClient, cfg.CacheTTL)

	// Инициализация сервисов
	services := v1.Services{
		Ambulances:  service.NewAmbulanceService(ambulanceRepo, log, publisher),
		Hospitals:   service.NewHospitalService(hospitalRepo, log, publisher),
		Volunteers:  service.NewVolunteerService(volunteerRepo, log, publisher),
		Emergencies: service.NewEmergencyService(emergencyRepo, log, publisher),
		Health:      service.NewHealthService(dbpool, redisClient),
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, log)

	// Настройка Gin роутера
	router := v1.NewRouter(log)
	handler.RegisterRoutes(router)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер после того, как новые события перестали поступать
	cancel()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Webhook worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
