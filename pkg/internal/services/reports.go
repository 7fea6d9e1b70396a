package services

import (
	"fmt"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
)

func NewReport(user models.Account, post models.Post, reason string) (models.Report, error) {
	report := models.Report{
		Reason:    reason,
		PostID:    post.ID,
		AccountID: user.ID,
	}

	if err := database.C.Save(&report).Error; err != nil {
		return report, fmt.Errorf("unable to create report: %v", err)
	}

	return report, nil
}

func GetReport(id uint) (models.Report, error) {
	var report models.Report
	if err := database.C.
		Preload("Post").Preload("Post.Account").Preload("Account").
		Where("id = ?", id).First(&report).Error; err != nil {
		return report, err
	}
	return report, nil
}

func ListReports(take int, offset int) ([]models.Report, error) {
	var reports []models.Report
	err := database.C.
		Preload("Post").Preload("Account").
		Order("created_at DESC").
		Offset(offset).Limit(take).
		Find(&reports).Error

	return reports, err
}

func DeleteReport(report models.Report) error {
	return database.C.Delete(&report).Error
}
