package controllers

import (
	"github.com/gofiber/fiber/v2"

	"guid-gatherer/middleware"
	"guid-gatherer/models"
	"guid-gatherer/services"
	"guid-gatherer/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (c *AuthController) Register(ctx *fiber.Ctx) error {
	var input models.RegisterInput
	if err := utils.DecodeStrict(ctx.Body(), &input); err != nil {
		return err
	}

	result, err := c.Auth.Register(ctx.UserContext(), input)
	if err != nil {
		return err
	}
	return utils.Success(ctx, fiber.StatusCreated, "Registration successful", result)
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input models.LoginInput
	if err := utils.DecodeStrict(ctx.Body(), &input); err != nil {
		return err
	}

	result, err := c.Auth.Login(ctx.UserContext(), input)
	if err != nil {
		return err
	}
	return utils.Success(ctx, fiber.StatusOK, "Login successful", result)
}

func (c *AuthController) Me(ctx *fiber.Ctx) error {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		return &utils.AuthError{Message: middleware.MsgInvalidToken}
	}
	return utils.Success(ctx, fiber.StatusOK, "User found", user)
}
