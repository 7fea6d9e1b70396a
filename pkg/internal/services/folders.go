package services

import (
	"fmt"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func GetFolder(id uint) (models.Folder, error) {
	var folder models.Folder
	if err := database.C.Where("id = ?", id).First(&folder).Error; err != nil {
		return folder, err
	}
	return folder, nil
}

func ListAccountFolders(user models.Account) ([]models.Folder, error) {
	var folders []models.Folder
	err := database.C.
		Where("account_id = ?", user.ID).
		Order("created_at DESC").
		Find(&folders).Error

	return folders, err
}

// ListFoldersForPost returns the caller's folders flagged with whether
// the given post is already saved in each.
func ListFoldersForPost(user models.Account, post models.Post) ([]models.Folder, error) {
	folders, err := ListAccountFolders(user)
	if err != nil {
		return folders, err
	}

	var saved []models.SavedPost
	if err := database.C.
		Where("account_id = ? AND post_id = ?", user.ID, post.ID).
		Find(&saved).Error; err != nil {
		return folders, err
	}
	savedIn := lo.SliceToMap(saved, func(item models.SavedPost) (uint, bool) {
		return item.FolderID, true
	})

	for idx := range folders {
		folders[idx].IsSaved = savedIn[folders[idx].ID]
	}

	return folders, nil
}

func NewFolder(user models.Account, title, description, status string) (models.Folder, error) {
	folder := models.Folder{
		Title:       title,
		Description: description,
		Status:      status,
		AccountID:   user.ID,
	}

	if err := database.C.Save(&folder).Error; err != nil {
		return folder, fmt.Errorf("unable to create folder: %v", err)
	}

	return folder, nil
}

func EditFolder(folder models.Folder, title, description, status string) (models.Folder, error) {
	folder.Title = title
	folder.Description = description
	folder.Status = status

	err := database.C.Save(&folder).Error

	return folder, err
}

func DeleteFolder(folder models.Folder) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("folder_id = ?", folder.ID).Delete(&models.SavedPost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&folder).Error
	})
}

// SavePostToFolders toggles membership per folder in one transaction:
// already-saved folders in the set are unsaved, the rest are saved.
func SavePostToFolders(user models.Account, post models.Post, folderIdx []uint) error {
	var folders []models.Folder
	if err := database.C.
		Where("account_id = ? AND id IN ?", user.ID, folderIdx).
		Find(&folders).Error; err != nil {
		return err
	}
	if len(folders) != len(lo.Uniq(folderIdx)) {
		return fmt.Errorf("some folders do not exist or are not yours")
	}

	return database.C.Transaction(func(tx *gorm.DB) error {
		for _, folder := range folders {
			var existing models.SavedPost
			err := tx.Where("account_id = ? AND folder_id = ? AND post_id = ?",
				user.ID, folder.ID, post.ID).First(&existing).Error
			if err == nil {
				if err := tx.Delete(&existing).Error; err != nil {
					return err
				}
				continue
			}

			record := models.SavedPost{
				AccountID: user.ID,
				FolderID:  folder.ID,
				PostID:    post.ID,
			}
			if err := tx.Save(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func ListFolderSavedPosts(folder models.Folder, viewer models.Account) ([]*models.Post, error) {
	var saved []models.SavedPost
	if err := database.C.
		Where("folder_id = ?", folder.ID).
		Order("created_at DESC").
		Find(&saved).Error; err != nil {
		return nil, err
	}

	idx := lo.Map(saved, func(item models.SavedPost, index int) uint {
		return item.PostID
	})
	if len(idx) == 0 {
		return []*models.Post{}, nil
	}

	items, err := ListPost(database.C.Where("posts.id IN ?", idx), 100, 0, "created_at DESC")
	if err != nil {
		return items, err
	}
	err = AttachPostMetrics(items, viewer)

	return items, err
}
