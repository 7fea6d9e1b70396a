package services

import (
	"fmt"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"gorm.io/gorm"
)

func GetGroup(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Preload("Owner").Where("id = ?", id).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func FilterGroupWithProbe(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}
	return tx.Where("title ILIKE ?", "%"+probe+"%")
}

func ListOwnedGroups(user models.Account) ([]models.Group, error) {
	var groups []models.Group
	err := database.C.
		Where("owner_id = ?", user.ID).
		Order("created_at DESC").
		Find(&groups).Error

	return groups, err
}

// ListJoinedGroups returns the groups the user belongs to, owned ones
// included through the membership row created at group creation.
func ListJoinedGroups(user models.Account, probe string, status string) ([]models.Group, error) {
	tx := database.C.
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.account_id = ?", user.ID)
	tx = FilterGroupWithProbe(tx, probe)
	if len(status) > 0 {
		tx = tx.Where("groups.status = ?", status)
	}

	var groups []models.Group
	err := tx.Preload("Owner").Order("groups.created_at DESC").Find(&groups).Error

	return groups, err
}

func SearchGroups(probe string, take int, offset int) ([]models.Group, error) {
	var groups []models.Group
	err := FilterGroupWithProbe(database.C, probe).
		Preload("Owner").
		Offset(offset).Limit(take).
		Find(&groups).Error

	return groups, err
}

func GetRandomGroups(take int) ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Preload("Owner").Order("RANDOM()").Limit(take).Find(&groups).Error

	return groups, err
}

func CountGroupMembers(group models.Group) int64 {
	var count int64
	if err := database.C.Model(&models.GroupMember{}).
		Where("group_id = ?", group.ID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}

func CountGroupPosts(group models.Group) int64 {
	var count int64
	if err := database.C.Model(&models.Post{}).
		Where("group_id = ?", group.ID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}

// NewGroup creates the group and seats the owner as an admin member in
// the same transaction.
func NewGroup(user models.Account, title, avatar, status string) (models.Group, error) {
	group := models.Group{
		Title:   title,
		Avatar:  avatar,
		Status:  status,
		OwnerID: user.ID,
	}

	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&group).Error; err != nil {
			return err
		}
		member := models.GroupMember{
			GroupID:   group.ID,
			AccountID: user.ID,
			Role:      models.GroupRoleAdmin,
		}
		return tx.Save(&member).Error
	})
	if err != nil {
		return group, fmt.Errorf("unable to create group: %v", err)
	}

	return group, nil
}

// EditGroup updates the group and rewrites the status of every post in
// it atomically, so a group flipped to private never leaves stale
// public posts behind.
func EditGroup(group models.Group, title, avatar, status string) (models.Group, error) {
	group.Title = title
	group.Avatar = avatar
	group.Status = status

	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&group).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("status", status).Error
	})
	if err != nil {
		return group, fmt.Errorf("unable to update group: %v", err)
	}

	return group, nil
}

func deleteGroupCascade(tx *gorm.DB, group models.Group) error {
	var posts []models.Post
	if err := tx.Where("group_id = ?", group.ID).Find(&posts).Error; err != nil {
		return err
	}
	for _, post := range posts {
		if err := deletePostCascade(tx, post); err != nil {
			return err
		}
	}

	for _, blank := range []any{
		&models.GroupMember{}, &models.GroupInvite{}, &models.GroupRequest{},
	} {
		if err := tx.Where("group_id = ?", group.ID).Delete(blank).Error; err != nil {
			return err
		}
	}

	return tx.Delete(&group).Error
}

func DeleteGroup(group models.Group) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		return deleteGroupCascade(tx, group)
	})
}

// TransferGroupOwnership reassigns the owner and makes sure the new
// owner holds an admin membership row.
func TransferGroupOwnership(group models.Group, newOwner models.Account) (models.Group, error) {
	err := database.C.Transaction(func(tx *gorm.DB) error {
		group.OwnerID = newOwner.ID
		if err := tx.Save(&group).Error; err != nil {
			return err
		}

		var member models.GroupMember
		if err := tx.Where("group_id = ? AND account_id = ?", group.ID, newOwner.ID).
			First(&member).Error; err != nil {
			member = models.GroupMember{GroupID: group.ID, AccountID: newOwner.ID}
		}
		member.Role = models.GroupRoleAdmin
		return tx.Save(&member).Error
	})
	if err != nil {
		return group, fmt.Errorf("unable to transfer ownership: %v", err)
	}

	MailGroupOwnershipTransferred(newOwner, group)

	return group, nil
}

func JoinGroup(user models.Account, group models.Group) (models.GroupMember, error) {
	var member models.GroupMember
	if group.Status != models.GroupStatusPublic {
		return member, fmt.Errorf("group is not open for joining")
	}
	if IsGroupMember(group, user.ID) {
		return member, fmt.Errorf("you are already a member of this group")
	}

	member = models.GroupMember{
		GroupID:   group.ID,
		AccountID: user.ID,
		Role:      models.GroupRoleMember,
	}

	err := database.C.Save(&member).Error

	return member, err
}

func LeaveGroup(user models.Account, group models.Group) error {
	member, err := GetGroupMember(group, user.ID)
	if err != nil {
		return asNotFound(err)
	}

	return database.C.Delete(&member).Error
}
