package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/http/api"
	"github.com/meraki-social/meraki/pkg/internal/models"
)

func adminOnly(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	if user.Role != models.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "administrator privileges required")
	}

	return c.Next()
}

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL, api.AuthMiddleware, adminOnly).Name("Admin API")
	{
		admin.Get("/dashboard", getDashboard)

		admin.Get("/users", adminListUsers)
		admin.Put("/users/:userId", adminUpdateUser)
		admin.Delete("/users/:userId", adminDeleteUser)

		admin.Get("/admins", adminListAdmins)
		admin.Post("/admins", adminCreateAdmin)
		admin.Delete("/admins/:userId", adminRemoveAdmin)

		admin.Get("/tags", adminListTags)
		admin.Post("/tags", adminCreateTag)
		admin.Put("/tags/:tagId", adminUpdateTag)
		admin.Delete("/tags/:tagId", adminDeleteTag)

		admin.Get("/groups", adminListGroups)

		admin.Get("/posts", adminListPosts)
		admin.Get("/posts/:postId", adminGetPost)
		admin.Delete("/posts/:postId", adminDeletePost)

		admin.Get("/comments", adminListComments)
		admin.Get("/comments/:commentId", adminGetComment)
		admin.Delete("/comments/:commentId", adminDeleteComment)

		admin.Get("/reports", adminListReports)
		admin.Get("/reports/:reportId", adminGetReport)
		admin.Delete("/reports/:reportId", adminDeleteReport)
	}
}
