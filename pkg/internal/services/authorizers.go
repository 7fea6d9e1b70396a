package services

import (
	"errors"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"gorm.io/gorm"
)

// IsGroupAdmin is the single predicate behind every group-mutating
// endpoint. It is evaluated fresh on each request; a demoted member
// loses the capability on their next call.
func IsGroupAdmin(user models.Account, group models.Group) bool {
	if user.Role == models.RoleAdmin {
		return true
	}
	if group.OwnerID == user.ID {
		return true
	}

	var member models.GroupMember
	if err := database.C.
		Where("group_id = ? AND account_id = ? AND role = ?", group.ID, user.ID, models.GroupRoleAdmin).
		First(&member).Error; err != nil {
		return false
	}

	return true
}

func IsGroupOwner(user models.Account, group models.Group) bool {
	return group.OwnerID == user.ID
}

func GetGroupMember(group models.Group, accountID uint) (models.GroupMember, error) {
	var member models.GroupMember
	if err := database.C.
		Where("group_id = ? AND account_id = ?", group.ID, accountID).
		First(&member).Error; err != nil {
		return member, err
	}
	return member, nil
}

func IsGroupMember(group models.Group, accountID uint) bool {
	_, err := GetGroupMember(group, accountID)
	return err == nil
}

// CanReadPost enforces post status: private posts belong to their
// author and the site admins only.
func CanReadPost(user models.Account, post models.Post) bool {
	if post.Status != models.PostStatusPrivate {
		return true
	}
	return post.AccountID == user.ID || user.Role == models.RoleAdmin
}

// CanRemoveMember mirrors the removal precedence: group admins whose
// site role is plain user cannot remove another group admin, unless
// they are removing themselves.
func CanRemoveMember(actor models.Account, group models.Group, target models.GroupMember) bool {
	if target.AccountID == actor.ID {
		return true
	}
	if !IsGroupAdmin(actor, group) {
		return false
	}
	if actor.Role != models.RoleAdmin && actor.ID != group.OwnerID && target.Role == models.GroupRoleAdmin {
		return false
	}
	return true
}

// CanEditMemberRole guards the generic role-edit path: once a member
// holds the group admin role, only a site admin may re-role them.
// Owners go through the promote and demote endpoints instead.
func CanEditMemberRole(actor models.Account, group models.Group, target models.GroupMember) bool {
	if !IsGroupAdmin(actor, group) {
		return false
	}
	if actor.Role != models.RoleAdmin && target.Role == models.GroupRoleAdmin {
		return false
	}
	return true
}

var ErrNotFound = errors.New("record not found")

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
