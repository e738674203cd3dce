package database

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"

	"guid-gatherer/config"
	"guid-gatherer/models"
	"guid-gatherer/services"
	"guid-gatherer/utils"
)

// SeedAdmin registers the configured admin account unless it already exists.
func SeedAdmin(ctx context.Context, cfg *config.Config, auth *services.AuthService) error {
	if cfg.AdminEmail == "" {
		return nil
	}

	_, err := auth.Register(ctx, models.RegisterInput{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
	})
	var dupErr *utils.DuplicateError
	switch {
	case errors.As(err, &dupErr):
		return nil
	case err != nil:
		return err
	}

	log.Infof("Seeded admin user %s", cfg.AdminEmail)
	return nil
}
