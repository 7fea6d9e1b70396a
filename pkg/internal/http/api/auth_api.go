package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/http/exts"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func doRegister(c *fiber.Ctx) error {
	var data struct {
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(data.FirstName, data.LastName, data.Email, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ticket, err := services.NewAuthTicket(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	token, err := services.IssueToken(ticket)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "registered successfully",
		"user":    account,
		"token":   token,
	})
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.GetAccountByEmail(data.Email)
	if err != nil || !services.VerifyPassword(account, data.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	ticket, err := services.NewAuthTicket(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	token, err := services.IssueToken(ticket)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "logged in successfully",
		"user":    account,
		"token":   token,
	})
}

func doLogout(c *fiber.Ctx) error {
	ticket := c.Locals("ticket").(models.AuthTicket)

	if err := services.InvalidateAuthTicket(ticket); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "logged out",
	})
}

func doLogoutAll(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	if err := services.InvalidateAllAuthTickets(user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "logged out everywhere",
	})
}

func checkPassword(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if !services.VerifyPassword(user, data.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "password did not match")
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "password matched",
	})
}

func requestPasswordReset(c *fiber.Ctx) error {
	var data struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.RequestPasswordReset(data.Email); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "password reset mail sent",
	})
}

func checkPasswordResetToken(c *fiber.Ctx) error {
	var data struct {
		Email string `json:"email" validate:"required,email"`
		Token string `json:"token" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.CheckPasswordResetToken(data.Email, data.Token); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "token is valid",
	})
}

func resetPassword(c *fiber.Ctx) error {
	var data struct {
		Email    string `json:"email" validate:"required,email"`
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.ResetPassword(data.Email, data.Token, data.Password); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "password has been reset",
	})
}
