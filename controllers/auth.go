package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-scheduler/models"
	"github.com/meinhoongagan/clinic-scheduler/utils"
)

type AuthController struct {
	users UserStore
}

func NewAuthController(users UserStore) *AuthController {
	return &AuthController{users: users}
}

// Register handles user registration
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: req.Username, PasswordHash: hash}
	if err := h.users.CreateUser(c.UserContext(), user); err != nil {
		return err
	}

	return c.JSON(utils.MessageResponse{Message: "User registered successfully", ID: user.ID})
}

// Login checks the credentials. Nothing is issued on success; callers send
// their credentials again whenever they need to prove who they are.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.users.UserByUsername(c.UserContext(), req.Username)
	var notFound *utils.NotFoundError
	if errors.As(err, &notFound) {
		return &utils.AuthError{}
	}
	if err != nil {
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return &utils.AuthError{}
	}

	return c.JSON(utils.MessageResponse{Message: "Login successful"})
}
