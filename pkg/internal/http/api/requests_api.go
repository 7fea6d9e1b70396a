package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func listGroupRequests(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}
	if !services.IsGroupAdmin(user, group) {
		return fiber.NewError(fiber.StatusForbidden, "you cannot manage this group")
	}

	requests, err := services.ListGroupRequests(group)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":   fiber.StatusOK,
		"message":  "ok",
		"requests": requests,
	})
}

// Posting twice withdraws the request, the endpoint is a toggle.
func toggleRequest(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}

	pending, err := services.ToggleRequest(user, group)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	message := "join request withdrawn"
	if pending {
		message = "join request sent"
	}

	return c.JSON(fiber.Map{
		"status":     fiber.StatusOK,
		"message":    message,
		"is_pending": pending,
	})
}

func acceptRequest(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("requestId", 0)

	request, err := services.GetRequest(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "request not found")
	}
	if !services.IsGroupAdmin(user, request.Group) {
		return fiber.NewError(fiber.StatusForbidden, "you cannot manage this group")
	}

	member, err := services.AcceptRequest(request)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "request accepted",
		"member":  member,
	})
}

func cancelRequest(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("requestId", 0)

	request, err := services.GetRequest(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "request not found")
	}
	if request.AccountID != user.ID && !services.IsGroupAdmin(user, request.Group) {
		return fiber.NewError(fiber.StatusForbidden, "you cannot cancel this request")
	}

	if err := services.CancelRequest(request); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "request cancelled",
	})
}
