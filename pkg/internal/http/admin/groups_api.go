package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
)

// adminListGroups searches across every group, by title or by the
// owner's email.
func adminListGroups(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := database.C.Model(&models.Group{})
	if probe := c.Query("probe"); len(probe) > 0 {
		probe = "%" + probe + "%"
		tx = tx.
			Joins("JOIN users ON users.id = groups.owner_id").
			Where("groups.title ILIKE ? OR users.email ILIKE ?", probe, probe)
	}

	var groups []models.Group
	if err := tx.Preload("Owner").
		Order("groups.created_at DESC").
		Offset(offset).Limit(take).
		Find(&groups).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"groups":  groups,
	})
}
