package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pranavyadav41/Dashboard-server/inner/common"
	"github.com/pranavyadav41/Dashboard-server/inner/database"
	"github.com/pranavyadav41/Dashboard-server/inner/employee"
	"github.com/pranavyadav41/Dashboard-server/inner/info"
	"github.com/pranavyadav41/Dashboard-server/inner/validator"
	"github.com/pranavyadav41/Dashboard-server/inner/web"

	"go.uber.org/zap"
)

// @title Dashboard-server API
// @version 1.0
// @description HTTP-сервис управления записями сотрудников
// @BasePath /api/v1
func main() {
	cfg := common.GetConfig(".env")
	logger := common.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	db, err := database.ConnectDbWithCfg(cfg)
	if err != nil {
		logger.Fatal("Connection error", zap.Error(err))
	}
	defer func() {
		if err := database.CloseDb(db); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// уникальные индексы employeeId и email - страховка от гонок
	// между проверкой уникальности в сервисе и вставкой
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		cancelIndex()
		logger.Fatal("Failed to ensure indexes", zap.Error(err))
	}
	cancelIndex()

	server := web.NewServer(cfg)
	server.App.Use(web.CustomMiddleware(logger.Logger))

	vld := validator.New()

	employeeRepo := employee.NewEmployeeRepository(db)
	employeeService := employee.NewService(employeeRepo, vld, logger, cfg.DefaultPageSize)
	employeeController := employee.NewController(server, employeeService, logger)
	employeeController.RegisterRoutes()

	infoController := info.NewController(server, cfg, db)
	infoController.RegisterRoutes()

	// запускаем сервер в отдельной горутине, чтобы дождаться сигнала остановки
	go func() {
		if err := server.App.Listen(":" + cfg.ServerPort); err != nil {
			logger.Fatal("Server stopped", zap.Error(err))
		}
	}()
	logger.Info("Server started", zap.String("port", cfg.ServerPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	if err := server.App.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("Failed to shutdown server gracefully", zap.Error(err))
	}
}
