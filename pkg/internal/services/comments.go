package services

import (
	"fmt"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"gorm.io/gorm"
)

func GetComment(id uint) (models.Comment, error) {
	var comment models.Comment
	if err := database.C.Preload("Account").
		Where("id = ?", id).First(&comment).Error; err != nil {
		return comment, err
	}
	return comment, nil
}

// ListPostComments renders the two-tier thread: top-level comments
// newest first, each with its direct replies oldest first. Replies to
// replies stay in the table but are not surfaced.
func ListPostComments(post models.Post) ([]models.Comment, error) {
	var comments []models.Comment
	err := database.C.
		Where("post_id = ? AND reply_id IS NULL", post.ID).
		Preload("Account").
		Preload("Replies", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("comments.created_at ASC")
		}).
		Preload("Replies.Account").
		Order("created_at DESC").
		Find(&comments).Error

	return comments, err
}

func CountPostComments(post models.Post) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", post.ID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func NewComment(user models.Account, post models.Post, content string, replyTo *uint) (models.Comment, error) {
	comment := models.Comment{
		Content:   content,
		PostID:    post.ID,
		AccountID: user.ID,
	}

	if replyTo != nil {
		var parent models.Comment
		if err := database.C.Where("id = ? AND post_id = ?", *replyTo, post.ID).
			First(&parent).Error; err != nil {
			return comment, fmt.Errorf("comment to reply to does not exist")
		}
		comment.ReplyID = replyTo
	}

	if err := database.C.Save(&comment).Error; err != nil {
		return comment, fmt.Errorf("unable to create comment: %v", err)
	}

	return comment, nil
}

// RedactComment is the user-facing delete: the text is blanked but the
// row survives so replies keep their anchor.
func RedactComment(comment models.Comment) error {
	return database.C.Model(&comment).Update("content", "").Error
}

// DeleteCommentPermanently removes the row and its direct replies.
// Admin surface only.
func DeleteCommentPermanently(comment models.Comment) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reply_id = ?", comment.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
}
