package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/http/exts"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func adminListUsers(c *fiber.Ctx) error {
	users, err := services.ListAccountsWithStats(c.QueryInt("take", 20), c.QueryInt("offset", 0))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"users":   users,
	})
}

func adminListAdmins(c *fiber.Ctx) error {
	users, err := services.ListAdmins()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"users":   users,
	})
}

func adminCreateAdmin(c *fiber.Ctx) error {
	var data struct {
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.CreateAdminAccount(data.FirstName, data.LastName, data.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "administrator created",
		"user":    account,
	})
}

func adminRemoveAdmin(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("userId", 0)

	if uint(id) == user.ID {
		return fiber.NewError(fiber.StatusBadRequest, "you can't change yourself")
	}

	target, err := services.GetAccount(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	target, err = services.RemoveAdminRole(target)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "administrator removed",
		"user":    target,
	})
}

func adminUpdateUser(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("userId", 0)

	target, err := services.GetAccount(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	var data struct {
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	target, err = services.EditAccountProfile(target, data.FirstName, data.LastName, data.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "user updated",
		"user":    target,
	})
}

func adminDeleteUser(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("userId", 0)

	if uint(id) == user.ID {
		return fiber.NewError(fiber.StatusBadRequest, "you can't delete yourself")
	}

	target, err := services.GetAccount(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	if err := services.DeleteAccount(target); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "user deleted",
	})
}
