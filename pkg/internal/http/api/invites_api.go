package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/http/exts"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func listGroupInvites(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}
	if !services.IsGroupAdmin(user, group) {
		return fiber.NewError(fiber.StatusForbidden, "you cannot manage this group")
	}

	invites, err := services.ListGroupInvites(group)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"invites": invites,
	})
}

func listMyInvites(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	invites, err := services.ListAccountInvites(user)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"invites": invites,
	})
}

func createInvite(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}
	if !services.IsGroupAdmin(user, group) {
		return fiber.NewError(fiber.StatusForbidden, "you cannot manage this group")
	}

	var data struct {
		AccountID uint `json:"account_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	target, err := services.GetAccount(data.AccountID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	invite, err := services.NewInvite(group, target)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "invite sent",
		"invite":  invite,
	})
}

func acceptInvite(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("inviteId", 0)

	invite, err := services.GetInvite(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "invite not found")
	}
	if invite.AccountID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "this invite is not yours")
	}

	member, err := services.AcceptInvite(invite)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "invite accepted",
		"member":  member,
	})
}

// Invitees may always cancel their own invite; anyone else needs group
// admin authority.
func cancelInvite(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("inviteId", 0)

	invite, err := services.GetInvite(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "invite not found")
	}
	if invite.AccountID != user.ID && !services.IsGroupAdmin(user, invite.Group) {
		return fiber.NewError(fiber.StatusForbidden, "you cannot cancel this invite")
	}

	if err := services.CancelInvite(invite); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "invite cancelled",
	})
}

func cancelInviteByUser(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	groupID, _ := c.ParamsInt("groupId", 0)
	userID, _ := c.ParamsInt("userId", 0)

	group, err := services.GetGroup(uint(groupID))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}
	if uint(userID) != user.ID && !services.IsGroupAdmin(user, group) {
		return fiber.NewError(fiber.StatusForbidden, "you cannot cancel this invite")
	}

	invite, err := services.GetInviteBy(group, uint(userID))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "invite not found")
	}

	if err := services.CancelInvite(invite); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "invite cancelled",
	})
}
