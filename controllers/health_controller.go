package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	DB Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{DB: db}
}

// Check always answers 200; a failing database only degrades the status.
func (c *HealthController) Check(ctx *fiber.Ctx) error {
	status, database := "healthy", "up"
	if c.DB != nil {
		pingCtx, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()
		if err := c.DB.Ping(pingCtx); err != nil {
			log.Warnf("health: database ping failed: %v", err)
			status, database = "degraded", "down"
		}
	}

	return ctx.JSON(fiber.Map{
		"message":   "Server is running!",
		"status":    status,
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
