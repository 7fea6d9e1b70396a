package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/http/exts"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func listFolders(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	folders, err := services.ListAccountFolders(user)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"folders": folders,
	})
}

func listFoldersForPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	folders, err := services.ListFoldersForPost(user, item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"folders": folders,
	})
}

func createFolder(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Title       string `json:"title" validate:"required,max=255"`
		Description string `json:"description"`
		Status      string `json:"status" validate:"required,oneof=public private"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	folder, err := services.NewFolder(user, data.Title, data.Description, data.Status)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "folder created",
		"folder":  folder,
	})
}

func editFolder(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("folderId", 0)

	folder, err := services.GetFolder(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "folder not found")
	}
	if folder.AccountID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "this folder is not yours")
	}

	var data struct {
		Title       string `json:"title" validate:"required,max=255"`
		Description string `json:"description"`
		Status      string `json:"status" validate:"required,oneof=public private"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	folder, err = services.EditFolder(folder, data.Title, data.Description, data.Status)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "folder updated",
		"folder":  folder,
	})
}

func deleteFolder(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("folderId", 0)

	folder, err := services.GetFolder(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "folder not found")
	}
	if folder.AccountID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "this folder is not yours")
	}

	if err := services.DeleteFolder(folder); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "folder deleted",
	})
}

func listSavedPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("folderId", 0)

	folder, err := services.GetFolder(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "folder not found")
	}
	if folder.AccountID != user.ID && folder.Status == models.FolderStatusPrivate {
		return fiber.NewError(fiber.StatusForbidden, "this folder is private")
	}

	posts, err := services.ListFolderSavedPosts(folder, user)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"posts":   posts,
	})
}

// savePost toggles the post's membership across the given folders:
// folders that already hold it drop it, the rest gain it.
func savePost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	if !services.CanReadPost(user, item) {
		return fiber.NewError(fiber.StatusForbidden, "this post is private")
	}

	var data struct {
		Folders []uint `json:"folders" validate:"required,min=1"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.SavePostToFolders(user, item, data.Folders); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "saved folders updated",
	})
}
