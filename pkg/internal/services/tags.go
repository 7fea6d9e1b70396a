package services

import (
	"errors"
	"strings"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"gorm.io/gorm"
)

func SearchTags(probe string, take int, offset int) ([]models.Tag, error) {
	probe = "%" + probe + "%"

	var tags []models.Tag
	err := database.C.Where("name ILIKE ?", probe).Offset(offset).Limit(take).Find(&tags).Error

	return tags, err
}

func ListTags(take int, offset int) ([]models.Tag, error) {
	var tags []models.Tag
	err := database.C.Offset(offset).Limit(take).Find(&tags).Error

	return tags, err
}

func GetTag(id uint) (models.Tag, error) {
	var tag models.Tag
	if err := database.C.Where("id = ?", id).First(&tag).Error; err != nil {
		return tag, err
	}
	return tag, nil
}

func GetTagOrCreate(name string) (models.Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	var tag models.Tag
	if err := database.C.Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			err := database.C.Save(&tag).Error
			return tag, err
		}
		return tag, err
	}

	return tag, nil
}

func NewTag(name string) (models.Tag, error) {
	tag := models.Tag{Name: strings.ToLower(strings.TrimSpace(name))}
	err := database.C.Save(&tag).Error

	return tag, err
}

func EditTag(tag models.Tag, name string) (models.Tag, error) {
	tag.Name = strings.ToLower(strings.TrimSpace(name))
	err := database.C.Save(&tag).Error

	return tag, err
}

func DeleteTag(tag models.Tag) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tag).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}
