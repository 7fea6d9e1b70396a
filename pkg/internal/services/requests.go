package services

import (
	"fmt"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"gorm.io/gorm"
)

func GetRequest(id uint) (models.GroupRequest, error) {
	var request models.GroupRequest
	if err := database.C.Preload("Group").Preload("Account").
		Where("id = ?", id).First(&request).Error; err != nil {
		return request, err
	}
	return request, nil
}

func GetRequestBy(group models.Group, accountID uint) (models.GroupRequest, error) {
	var request models.GroupRequest
	if err := database.C.
		Where("group_id = ? AND account_id = ?", group.ID, accountID).
		First(&request).Error; err != nil {
		return request, err
	}
	return request, nil
}

func IsRequesting(group models.Group, accountID uint) bool {
	_, err := GetRequestBy(group, accountID)
	return err == nil
}

func ListGroupRequests(group models.Group) ([]models.GroupRequest, error) {
	var requests []models.GroupRequest
	err := database.C.
		Where("group_id = ?", group.ID).
		Preload("Account").
		Order("created_at DESC").
		Find(&requests).Error

	return requests, err
}

// ToggleRequest files a join request, or withdraws the pending one if
// it already exists. Returns whether a request is pending afterwards.
func ToggleRequest(user models.Account, group models.Group) (bool, error) {
	if IsGroupMember(group, user.ID) {
		return false, fmt.Errorf("you are already a member of this group")
	}

	if existing, err := GetRequestBy(group, user.ID); err == nil {
		return false, database.C.Delete(&existing).Error
	}

	request := models.GroupRequest{
		GroupID:   group.ID,
		AccountID: user.ID,
	}

	if err := database.C.Save(&request).Error; err != nil {
		return false, fmt.Errorf("unable to create join request: %v", err)
	}

	return true, nil
}

// AcceptRequest consumes the request the same way invites are
// consumed; accepting an already accepted request 404s upstream.
func AcceptRequest(request models.GroupRequest) (models.GroupMember, error) {
	member := models.GroupMember{
		GroupID:   request.GroupID,
		AccountID: request.AccountID,
		Role:      models.GroupRoleMember,
	}

	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&member).Error; err != nil {
			return err
		}
		return tx.Delete(&request).Error
	})
	if err != nil {
		return member, fmt.Errorf("unable to accept join request: %v", err)
	}

	return member, nil
}

func CancelRequest(request models.GroupRequest) error {
	return database.C.Delete(&request).Error
}
