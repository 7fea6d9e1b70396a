package services

import (
	"fmt"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
)

func FollowAccount(follower models.Account, target models.Account) error {
	if follower.ID == target.ID {
		return fmt.Errorf("you cannot follow yourself")
	}

	var edge models.Follower
	if err := database.C.
		Where("account_id = ? AND follower_id = ?", target.ID, follower.ID).
		First(&edge).Error; err == nil {
		return fmt.Errorf("you are already following this user")
	}

	edge = models.Follower{AccountID: target.ID, FollowerID: follower.ID}
	if err := database.C.Save(&edge).Error; err != nil {
		return fmt.Errorf("unable to follow user: %v", err)
	}

	return nil
}

func UnfollowAccount(follower models.Account, target models.Account) error {
	var edge models.Follower
	if err := database.C.
		Where("account_id = ? AND follower_id = ?", target.ID, follower.ID).
		First(&edge).Error; err != nil {
		return fmt.Errorf("you are not following this user")
	}

	return database.C.Delete(&edge).Error
}

func IsFollowing(follower models.Account, targetID uint) bool {
	var edge models.Follower
	err := database.C.
		Where("account_id = ? AND follower_id = ?", targetID, follower.ID).
		First(&edge).Error

	return err == nil
}

func ListFollowers(accountID uint) ([]models.Account, error) {
	var accounts []models.Account
	err := database.C.
		Joins("JOIN user_followers ON user_followers.follower_id = users.id").
		Where("user_followers.account_id = ?", accountID).
		Find(&accounts).Error

	return accounts, err
}

func ListFollowing(accountID uint) ([]models.Account, error) {
	var accounts []models.Account
	err := database.C.
		Joins("JOIN user_followers ON user_followers.account_id = users.id").
		Where("user_followers.follower_id = ?", accountID).
		Find(&accounts).Error

	return accounts, err
}

func CountFollowers(accountID uint) int64 {
	var count int64
	if err := database.C.Model(&models.Follower{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}

func CountFollowing(accountID uint) int64 {
	var count int64
	if err := database.C.Model(&models.Follower{}).
		Where("follower_id = ?", accountID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}
