package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"guid-gatherer/models"
	"guid-gatherer/services"
	"guid-gatherer/types"
	"guid-gatherer/utils"
)

const (
	MsgNoToken      = "No token provided"
	MsgInvalidToken = "Invalid token"
	MsgExpiredToken = "Invalid or expired token"

	localUser   = "user"
	localUserID = "userID"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware verifies the bearer token of every request it guards and
// stores the resolved user in ctx.Locals. Nothing is kept between requests.
func AuthMiddleware(auth Authenticator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := bearerToken(ctx.Get(fiber.HeaderAuthorization))
		if token == "" {
			return &utils.AuthError{Message: MsgNoToken}
		}

		user, err := auth.Authenticate(ctx.UserContext(), token)
		switch {
		case errors.Is(err, services.ErrInvalidToken):
			return &utils.AuthError{Message: MsgExpiredToken}
		case errors.Is(err, utils.ErrRecordNotFound):
			return &utils.AuthError{Message: MsgInvalidToken}
		case err != nil:
			return err
		}

		ctx.Locals(localUser, user)
		ctx.Locals(localUserID, user.ID)
		return ctx.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// CurrentUser returns the user attached by AuthMiddleware, or nil.
func CurrentUser(ctx *fiber.Ctx) *models.User {
	user, _ := ctx.Locals(localUser).(*models.User)
	return user
}

func CurrentUserID(ctx *fiber.Ctx) (types.SnowflakeID, bool) {
	id, ok := ctx.Locals(localUserID).(types.SnowflakeID)
	return id, ok
}
