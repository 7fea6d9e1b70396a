package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func adminListReports(c *fiber.Ctx) error {
	reports, err := services.ListReports(c.QueryInt("take", 20), c.QueryInt("offset", 0))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"reports": reports,
	})
}

func adminGetReport(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("reportId", 0)

	report, err := services.GetReport(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "report not found")
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"report":  report,
	})
}

func adminDeleteReport(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("reportId", 0)

	report, err := services.GetReport(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "report not found")
	}

	if err := services.DeleteReport(report); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "report deleted",
	})
}
