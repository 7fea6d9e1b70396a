package services

import (
	"fmt"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"gorm.io/gorm"
)

func GetInvite(id uint) (models.GroupInvite, error) {
	var invite models.GroupInvite
	if err := database.C.Preload("Group").Preload("Account").
		Where("id = ?", id).First(&invite).Error; err != nil {
		return invite, err
	}
	return invite, nil
}

func GetInviteBy(group models.Group, accountID uint) (models.GroupInvite, error) {
	var invite models.GroupInvite
	if err := database.C.
		Where("group_id = ? AND account_id = ?", group.ID, accountID).
		First(&invite).Error; err != nil {
		return invite, err
	}
	return invite, nil
}

func IsInvited(group models.Group, accountID uint) bool {
	_, err := GetInviteBy(group, accountID)
	return err == nil
}

func ListGroupInvites(group models.Group) ([]models.GroupInvite, error) {
	var invites []models.GroupInvite
	err := database.C.
		Where("group_id = ?", group.ID).
		Preload("Account").
		Order("created_at DESC").
		Find(&invites).Error

	return invites, err
}

func ListAccountInvites(user models.Account) ([]models.GroupInvite, error) {
	var invites []models.GroupInvite
	err := database.C.
		Where("account_id = ?", user.ID).
		Preload("Group").Preload("Group.Owner").
		Order("created_at DESC").
		Find(&invites).Error

	return invites, err
}

func NewInvite(group models.Group, target models.Account) (models.GroupInvite, error) {
	var invite models.GroupInvite
	if IsGroupMember(group, target.ID) {
		return invite, fmt.Errorf("user is already a member of this group")
	}
	if IsInvited(group, target.ID) {
		return invite, fmt.Errorf("user has already been invited")
	}

	invite = models.GroupInvite{
		GroupID:   group.ID,
		AccountID: target.ID,
	}

	if err := database.C.Save(&invite).Error; err != nil {
		return invite, fmt.Errorf("unable to create invite: %v", err)
	}

	return invite, nil
}

// AcceptInvite consumes the invite: one transaction seats the member
// and deletes the invite row, so a second accept finds nothing.
func AcceptInvite(invite models.GroupInvite) (models.GroupMember, error) {
	member := models.GroupMember{
		GroupID:   invite.GroupID,
		AccountID: invite.AccountID,
		Role:      models.GroupRoleMember,
	}

	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&member).Error; err != nil {
			return err
		}
		return tx.Delete(&invite).Error
	})
	if err != nil {
		return member, fmt.Errorf("unable to accept invite: %v", err)
	}

	return member, nil
}

func CancelInvite(invite models.GroupInvite) error {
	return database.C.Delete(&invite).Error
}
