package services

import (
	"fmt"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/samber/lo"
)

func ListGroupMembers(group models.Group, probe string) ([]models.GroupMember, error) {
	tx := database.C.Where("group_id = ?", group.ID)
	if len(probe) > 0 {
		probe = "%" + probe + "%"
		tx = tx.
			Joins("JOIN users ON users.id = group_members.account_id").
			Where("users.first_name ILIKE ? OR users.last_name ILIKE ? OR users.email ILIKE ?", probe, probe, probe)
	}

	var members []models.GroupMember
	err := tx.Preload("Account").Order("group_members.created_at ASC").Find(&members).Error

	return members, err
}

// ListNonMembers lists accounts outside the group, annotated with
// whether the caller follows them and whether an invite is pending.
func ListNonMembers(group models.Group, viewer models.Account, probe string, take int) ([]map[string]any, error) {
	tx := database.C.
		Where("id NOT IN (?)", database.C.Model(&models.GroupMember{}).
			Select("account_id").Where("group_id = ?", group.ID))
	if len(probe) > 0 {
		probe = "%" + probe + "%"
		tx = tx.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", probe, probe, probe)
	}

	var accounts []models.Account
	if err := tx.Limit(take).Find(&accounts).Error; err != nil {
		return nil, err
	}

	idx := lo.Map(accounts, func(item models.Account, index int) uint {
		return item.ID
	})

	var follows []models.Follower
	database.C.Where("follower_id = ? AND account_id IN ?", viewer.ID, idx).Find(&follows)
	followed := lo.SliceToMap(follows, func(item models.Follower) (uint, bool) {
		return item.AccountID, true
	})

	var invites []models.GroupInvite
	database.C.Where("group_id = ? AND account_id IN ?", group.ID, idx).Find(&invites)
	invited := lo.SliceToMap(invites, func(item models.GroupInvite) (uint, bool) {
		return item.AccountID, true
	})

	out := lo.Map(accounts, func(item models.Account, index int) map[string]any {
		return map[string]any{
			"account":      item,
			"is_following": followed[item.ID],
			"is_invited":   invited[item.ID],
		}
	})

	return out, nil
}

func EditMemberRole(member models.GroupMember, role string) (models.GroupMember, error) {
	if role != models.GroupRoleMember && role != models.GroupRoleAdmin {
		return member, fmt.Errorf("unknown member role: %s", role)
	}

	member.Role = role
	err := database.C.Save(&member).Error

	return member, err
}

func RemoveMember(member models.GroupMember) error {
	return database.C.Delete(&member).Error
}
