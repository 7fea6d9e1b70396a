package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/http/exts"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func listJoinedGroups(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	groups, err := services.ListJoinedGroups(user, c.Query("probe"), c.Query("status"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"groups":  groups,
	})
}

func listOwnedGroups(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	groups, err := services.ListOwnedGroups(user)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"groups":  groups,
	})
}

func getGroup(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}

	return c.JSON(fiber.Map{
		"status":        fiber.StatusOK,
		"message":       "ok",
		"group":         group,
		"is_member":     services.IsGroupMember(group, user.ID),
		"is_admin":      services.IsGroupAdmin(user, group),
		"is_owner":      services.IsGroupOwner(user, group),
		"is_requesting": services.IsRequesting(group, user.ID),
		"is_inviting":   services.IsInvited(group, user.ID),
		"member_count":  services.CountGroupMembers(group),
		"post_count":    services.CountGroupPosts(group),
	})
}

func createGroup(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Title  string `json:"title" validate:"required,max=255"`
		Avatar string `json:"avatar"`
		Status string `json:"status" validate:"required,oneof=public private"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(user, data.Title, data.Avatar, data.Status)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "group created",
		"group":   group,
	})
}

func editGroup(c *fiber.Ctx) error {
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
		Title  string `json:"title" validate:"required,max=255"`
		Avatar string `json:"avatar"`
		Status string `json:"status" validate:"required,oneof=public private"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err = services.EditGroup(group, data.Title, data.Avatar, data.Status)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "group updated",
		"group":   group,
	})
}

func deleteGroup(c *fiber.Ctx) error {
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
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if !services.VerifyPassword(user, data.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "password did not match")
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "group deleted",
	})
}

func transferGroupOwnership(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}
	if !services.IsGroupOwner(user, group) {
		return fiber.NewError(fiber.StatusForbidden, "only the owner can transfer this group")
	}

	var data struct {
		Password   string `json:"password" validate:"required"`
		NewOwnerID uint   `json:"new_owner_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if !services.VerifyPassword(user, data.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "password did not match")
	}

	newOwner, err := services.GetAccount(data.NewOwnerID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "new owner not found")
	}

	group, err = services.TransferGroupOwnership(group, newOwner)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ownership transferred",
		"group":   group,
	})
}

func joinGroup(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}

	member, err := services.JoinGroup(user, group)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "joined group",
		"member":  member,
	})
}

func leaveGroup(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}

	if err := services.LeaveGroup(user, group); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "you are not a member of this group")
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "left group",
	})
}
