package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func getDashboard(c *fiber.Ctx) error {
	stats, err := services.GetDashboardStatistics()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"data":    stats,
	})
}
