package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/http/exts"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func getGroupAndMember(c *fiber.Ctx) (models.Group, models.GroupMember, error) {
	groupID, _ := c.ParamsInt("groupId", 0)
	memberID, _ := c.ParamsInt("memberId", 0)

	group, err := services.GetGroup(uint(groupID))
	if err != nil {
		return group, models.GroupMember{}, fiber.NewError(fiber.StatusNotFound, "group not found")
	}

	var member models.GroupMember
	if err := database.C.Preload("Account").
		Where("id = ? AND group_id = ?", memberID, group.ID).
		First(&member).Error; err != nil {
		return group, member, fiber.NewError(fiber.StatusNotFound, "member not found")
	}

	return group, member, nil
}

func listGroupMembers(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}
	if group.Status == models.GroupStatusPrivate &&
		user.Role != models.RoleAdmin && !services.IsGroupMember(group, user.ID) {
		return fiber.NewError(fiber.StatusForbidden, "you are not a member of this group")
	}

	members, err := services.ListGroupMembers(group, c.Query("probe"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"members": members,
	})
}

func listNonMembers(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}
	if !services.IsGroupAdmin(user, group) {
		return fiber.NewError(fiber.StatusForbidden, "you cannot manage this group")
	}

	users, err := services.ListNonMembers(group, user, c.Query("probe"), c.QueryInt("take", 20))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"users":   users,
	})
}

func editMemberRole(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	group, member, err := getGroupAndMember(c)
	if err != nil {
		return err
	}
	if member.AccountID == user.ID {
		return fiber.NewError(fiber.StatusBadRequest, "you can't change yourself")
	}
	if !services.CanEditMemberRole(user, group, member) {
		return fiber.NewError(fiber.StatusForbidden, "you cannot change this member's role")
	}

	var data struct {
		Role string `json:"role" validate:"required,oneof=member admin"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	member, err = services.EditMemberRole(member, data.Role)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "member role updated",
		"member":  member,
	})
}

// Promotion and demotion are owner privileges, a plain group admin
// cannot mint other admins.
func promoteMember(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	group, member, err := getGroupAndMember(c)
	if err != nil {
		return err
	}
	if !services.IsGroupOwner(user, group) {
		return fiber.NewError(fiber.StatusForbidden, "only the owner can promote members")
	}
	if member.AccountID == user.ID {
		return fiber.NewError(fiber.StatusBadRequest, "you can't change yourself")
	}

	member, err = services.EditMemberRole(member, models.GroupRoleAdmin)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "member promoted",
		"member":  member,
	})
}

func demoteMember(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	group, member, err := getGroupAndMember(c)
	if err != nil {
		return err
	}
	if !services.IsGroupOwner(user, group) {
		return fiber.NewError(fiber.StatusForbidden, "only the owner can demote members")
	}
	if member.AccountID == user.ID {
		return fiber.NewError(fiber.StatusBadRequest, "you can't change yourself")
	}

	member, err = services.EditMemberRole(member, models.GroupRoleMember)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "member demoted",
		"member":  member,
	})
}

func removeMember(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	group, member, err := getGroupAndMember(c)
	if err != nil {
		return err
	}
	if !services.CanRemoveMember(user, group, member) {
		return fiber.NewError(fiber.StatusForbidden, "you cannot remove this member")
	}

	if err := services.RemoveMember(member); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "member removed",
	})
}
