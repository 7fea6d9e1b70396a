package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/http/exts"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func listPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := services.FilterPostWithVisibility(database.C, user)
	if probe := c.Query("probe"); len(probe) > 0 {
		tx = services.FilterPostWithFuzzySearch(tx, probe)
	}
	if tag := c.Query("tag"); len(tag) > 0 {
		tx = services.FilterPostWithTag(tx, tag)
	}

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, take, offset, "posts.created_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := services.AttachPostMetrics(items, user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"count":   count,
		"posts":   items,
	})
}

func listMyPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := services.FilterPostWithAuthor(database.C, user.ID)

	items, err := services.ListPost(tx, take, offset, "posts.created_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := services.AttachPostMetrics(items, user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"posts":   items,
	})
}

func listLatestPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	take := c.QueryInt("take", 10)

	tx := services.FilterPostWithVisibility(database.C, user)

	items, err := services.ListPost(tx, take, 0, "posts.created_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := services.AttachPostMetrics(items, user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"posts":   items,
	})
}

func listHighlightedPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	take := c.QueryInt("take", 10)

	tx := services.FilterPostWithVisibility(database.C, user)
	order := "(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) DESC"

	items, err := services.ListPost(tx, take, 0, order)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := services.AttachPostMetrics(items, user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"posts":   items,
	})
}

func listUserPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("userId", 0)
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	if _, err := services.GetAccount(uint(id)); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	tx := services.FilterPostWithAuthor(database.C, uint(id))
	tx = services.FilterPostWithVisibility(tx, user)

	items, err := services.ListPost(tx, take, offset, "posts.created_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := services.AttachPostMetrics(items, user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"posts":   items,
	})
}

func listGroupPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("groupId", 0)
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}

	if group.Status == models.GroupStatusPrivate &&
		user.Role != models.RoleAdmin && !services.IsGroupMember(group, user.ID) {
		return fiber.NewError(fiber.StatusForbidden, "you are not a member of this group")
	}

	tx := services.FilterPostWithGroup(database.C, group.ID)

	items, err := services.ListPost(tx, take, offset, "posts.created_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := services.AttachPostMetrics(items, user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"posts":   items,
	})
}

func getPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	if !services.CanReadPost(user, item) {
		return fiber.NewError(fiber.StatusForbidden, "this post is private")
	}

	items := []*models.Post{&item}
	if err := services.AttachPostMetrics(items, user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":        fiber.StatusOK,
		"message":       "ok",
		"post":          item,
		"comment_count": services.CountPostComments(item),
	})
}

func createPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Title       string   `json:"title" validate:"required,max=255"`
		Description string   `json:"description" validate:"required"`
		ImageURL    string   `json:"image_url"`
		GroupID     *uint    `json:"group_id"`
		Tags        []string `json:"tags" validate:"dive,required,max=64"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var group *models.Group
	if data.GroupID != nil {
		out, err := services.GetGroup(*data.GroupID)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "group not found")
		}
		if !services.IsGroupMember(out, user.ID) && user.Role != models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "you are not a member of this group")
		}
		group = &out
	}

	item, err := services.NewPost(user, group, data.Title, data.Description, data.ImageURL)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if len(data.Tags) > 0 {
		tags := make([]models.Tag, 0, len(data.Tags))
		for _, name := range data.Tags {
			tag, err := services.GetTagOrCreate(name)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			tags = append(tags, tag)
		}
		if err := services.SetPostTags(item, tags); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "post created",
		"post":    item,
	})
}

func editPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	if item.AccountID != user.ID && user.Role != models.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "you cannot edit this post")
	}

	var data struct {
		Title       string   `json:"title" validate:"required,max=255"`
		Description string   `json:"description" validate:"required"`
		ImageURL    string   `json:"image_url"`
		Tags        []string `json:"tags" validate:"dive,required,max=64"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err = services.EditPost(item, data.Title, data.Description, data.ImageURL)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if data.Tags != nil {
		tags := make([]models.Tag, 0, len(data.Tags))
		for _, name := range data.Tags {
			tag, err := services.GetTagOrCreate(name)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			tags = append(tags, tag)
		}
		if err := services.SetPostTags(item, tags); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "post updated",
		"post":    item,
	})
}

func deletePost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	if item.AccountID != user.ID && user.Role != models.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "you cannot delete this post")
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "post deleted",
	})
}

func listRelatedPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)
	take := c.QueryInt("take", 10)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	if !services.CanReadPost(user, item) {
		return fiber.NewError(fiber.StatusForbidden, "this post is private")
	}

	items, err := services.ListRelatedPost(item, user, take)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"posts":   items,
	})
}

func likePost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	if !services.CanReadPost(user, item) {
		return fiber.NewError(fiber.StatusForbidden, "this post is private")
	}

	if err := services.LikePost(user, item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":     fiber.StatusOK,
		"message":    "post liked",
		"like_count": services.CountPostLikes(item),
	})
}

func unlikePost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	if err := services.UnlikePost(user, item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":     fiber.StatusOK,
		"message":    "post unliked",
		"like_count": services.CountPostLikes(item),
	})
}

func reportPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	var data struct {
		Reason string `json:"reason" validate:"required,max=1024"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	report, err := services.NewReport(user, item, data.Reason)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "report submitted",
		"report":  report,
	})
}
