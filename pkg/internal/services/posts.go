package services

import (
	"fmt"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func FilterPostWithVisibility(tx *gorm.DB, user models.Account) *gorm.DB {
	if user.Role == models.RoleAdmin {
		return tx
	}
	return tx.Where("status = ? OR account_id = ?", models.PostStatusPublic, user.ID)
}

func FilterPostWithAuthor(tx *gorm.DB, accountID uint) *gorm.DB {
	return tx.Where("account_id = ?", accountID)
}

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}
	probe = "%" + probe + "%"
	return tx.Where("title ILIKE ? OR description ILIKE ?", probe, probe)
}

func FilterPostWithTag(tx *gorm.DB, name string) *gorm.DB {
	return tx.Joins("JOIN post_tags ON posts.id = post_tags.post_id").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("tags.name = ?", name).
		Distinct("posts.id")
}

func PreloadPostGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Account").
		Preload("Group").
		Preload("Tags")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadPostGeneral(tx).
		Where("posts.id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]*models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadPostGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

// AttachPostMetrics batch-fills the like counters and the viewer's own
// like flag for a page of posts.
func AttachPostMetrics(items []*models.Post, viewer models.Account) error {
	if len(items) == 0 {
		return nil
	}

	idx := lo.Map(items, func(item *models.Post, index int) uint {
		return item.ID
	})
	itemMap := lo.SliceToMap(items, func(item *models.Post) (uint, *models.Post) {
		return item.ID, item
	})

	var counts []struct {
		PostID uint
		Count  int64
	}
	if err := database.C.Model(&models.PostLike{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&counts).Error; err != nil {
		return err
	}
	for _, info := range counts {
		if post, ok := itemMap[info.PostID]; ok {
			post.LikeCount = info.Count
		}
	}

	var likes []models.PostLike
	if err := database.C.
		Where("account_id = ? AND post_id IN ?", viewer.ID, idx).
		Find(&likes).Error; err != nil {
		return err
	}
	for _, like := range likes {
		if post, ok := itemMap[like.PostID]; ok {
			post.IsLiked = true
		}
	}

	return nil
}

func NewPost(user models.Account, group *models.Group, title, description, imageURL string) (models.Post, error) {
	item := models.Post{
		Title:       title,
		Description: description,
		Language:    DetectLanguage(description),
		ImageURL:    imageURL,
		Status:      models.PostStatusPublic,
		AccountID:   user.ID,
	}

	// Posts wear their group's status so a private group never leaks
	// through its feed.
	if group != nil {
		item.GroupID = &group.ID
		item.Status = group.Status
	}

	if err := database.C.Save(&item).Error; err != nil {
		return item, fmt.Errorf("unable to create post: %v", err)
	}

	return item, nil
}

func EditPost(item models.Post, title, description, imageURL string) (models.Post, error) {
	item.Title = title
	item.Description = description
	item.Language = DetectLanguage(description)
	item.ImageURL = imageURL

	err := database.C.Save(&item).Error

	return item, err
}

func SetPostTags(item models.Post, tags []models.Tag) error {
	return database.C.Model(&item).Association("Tags").Replace(tags)
}

func deletePostCascade(tx *gorm.DB, item models.Post) error {
	for _, blank := range []any{
		&models.PostLike{}, &models.Comment{}, &models.SavedPost{}, &models.Report{},
	} {
		if err := tx.Where("post_id = ?", item.ID).Delete(blank).Error; err != nil {
			return err
		}
	}
	if err := tx.Model(&item).Association("Tags").Clear(); err != nil {
		return err
	}

	return tx.Delete(&item).Error
}

func DeletePost(item models.Post) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		return deletePostCascade(tx, item)
	})
}

// ListRelatedPost unions posts sharing a tag with posts from the same
// author, minus the post itself, in random order.
func ListRelatedPost(item models.Post, viewer models.Account, take int) ([]*models.Post, error) {
	tagIdx := lo.Map(item.Tags, func(tag models.Tag, index int) uint {
		return tag.ID
	})

	tx := database.C.Model(&models.Post{}).Where("posts.id != ?", item.ID)
	if len(tagIdx) > 0 {
		tx = tx.
			Joins("LEFT JOIN post_tags ON posts.id = post_tags.post_id").
			Where("post_tags.tag_id IN ? OR posts.account_id = ?", tagIdx, item.AccountID).
			Distinct("posts.id")
	} else {
		tx = tx.Where("posts.account_id = ?", item.AccountID)
	}
	tx = FilterPostWithVisibility(tx, viewer)

	var idx []uint
	if err := tx.Pluck("posts.id", &idx).Error; err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return []*models.Post{}, nil
	}

	items, err := ListPost(database.C.Where("posts.id IN ?", idx), take, 0, "RANDOM()")
	if err != nil {
		return items, err
	}
	err = AttachPostMetrics(items, viewer)

	return items, err
}

func LikePost(user models.Account, item models.Post) error {
	var like models.PostLike
	if err := database.C.
		Where("post_id = ? AND account_id = ?", item.ID, user.ID).
		First(&like).Error; err == nil {
		return fmt.Errorf("you already liked this post")
	}

	like = models.PostLike{PostID: item.ID, AccountID: user.ID}
	if err := database.C.Save(&like).Error; err != nil {
		return fmt.Errorf("unable to like post: %v", err)
	}

	return nil
}

func UnlikePost(user models.Account, item models.Post) error {
	var like models.PostLike
	if err := database.C.
		Where("post_id = ? AND account_id = ?", item.ID, user.ID).
		First(&like).Error; err != nil {
		return fmt.Errorf("you have not liked this post")
	}

	return database.C.Delete(&like).Error
}

func CountPostLikes(item models.Post) int64 {
	var count int64
	if err := database.C.Model(&models.PostLike{}).
		Where("post_id = ?", item.ID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}
