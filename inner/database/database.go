package database

import (
	"context"
	"fmt"
	"time"

	"github.com/pranavyadav41/Dashboard-server/inner/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const connectTimeout = 5 * time.Second

// EmployeeCollection имя коллекции с сотрудниками
const EmployeeCollection = "employees"

// Получить конфиг и подключиться с ним к базе данных
func ConnectDb() (*mongo.Database, error) {
	cfg := common.GetConfig(".env")
	return ConnectDbWithCfg(cfg)
}

// Подключиться к базе данных с переданным конфигом
func ConnectDbWithCfg(cfg common.Config) (*mongo.Database, error) {
	logger := common.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoUri))
	if err != nil {
		logger.Error("Failed to connect to database",
			zap.String("database", cfg.MongoDb),
			zap.Error(err))
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// проверяем, что сервер действительно доступен
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Error("Failed to ping database",
			zap.String("database", cfg.MongoDb),
			zap.Error(err))
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established successfully",
		zap.String("database", cfg.MongoDb))

	return client.Database(cfg.MongoDb), nil
}

// CloseDb закрывает соединение с базой данных
func CloseDb(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.Client().Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// EnsureIndexes создаёт уникальные индексы коллекции employees.
// Уникальность employeeId и email обеспечивается самим хранилищем:
// проверки в сервисе не атомарны относительно конкурентных запросов.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employeeId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := db.Collection(EmployeeCollection).Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create employee indexes: %w", err)
	}
	return nil
}
