package info

import (
	"github.com/pranavyadav41/Dashboard-server/inner/common"
	"github.com/pranavyadav41/Dashboard-server/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Controller struct {
	server *web.Server
	cfg    common.Config
	db     *mongo.Database
}

func NewController(server *web.Server, cfg common.Config, db *mongo.Database) *Controller {
	return &Controller{
		server: server,
		cfg:    cfg,
		db:     db,
	}
}

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (c *Controller) RegisterRoutes() {
	// полный путь будет "/internal/info"
	c.server.GroupInternal.Get("/info", c.GetInfo)
	// полный путь будет "/internal/health"
	c.server.GroupInternal.Get("/health", c.GetHealth)
}

// GetInfo получение информации о приложении
func (c *Controller) GetInfo(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(&InfoResponse{
		Name:    c.cfg.AppName,
		Version: c.cfg.AppVersion,
	})
}

// GetHealth проверка работоспособности приложения
func (c *Controller) GetHealth(ctx *fiber.Ctx) error {
	health := HealthResponse{
		Status:   "OK",
		Database: "OK",
	}

	if c.db == nil {
		health.Status = "ERROR"
		health.Database = "not configured"
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(&health)
	}

	if err := c.db.Client().Ping(ctx.UserContext(), readpref.Primary()); err != nil {
		health.Status = "ERROR"
		health.Database = err.Error()
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(&health)
	}

	return ctx.Status(fiber.StatusOK).JSON(&health)
}
