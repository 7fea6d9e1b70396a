package services_test

import (
	"errors"
	"testing"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
	"gorm.io/gorm"
)

func TestNewGroupSeatsOwner(t *testing.T) {
	owner := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPublic)

	member, err := services.GetGroupMember(group, owner.ID)
	if err != nil {
		t.Fatalf("owner should have a membership row: %v", err)
	}
	if member.Role != models.GroupRoleAdmin {
		t.Errorf("owner membership role should be admin, got %q", member.Role)
	}
}

func TestEditGroupRewritesPostStatus(t *testing.T) {
	owner := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPublic)

	post, err := services.NewPost(owner, &group, "Hello", "World", "")
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}
	if post.Status != models.PostStatusPublic {
		t.Fatalf("post in public group should be public, got %q", post.Status)
	}

	if _, err := services.EditGroup(group, group.Title, group.Avatar, models.GroupStatusPrivate); err != nil {
		t.Fatalf("unable to update group: %v", err)
	}

	post, err = services.GetPost(database.C, post.ID)
	if err != nil {
		t.Fatalf("unable to reload post: %v", err)
	}
	if post.Status != models.PostStatusPrivate {
		t.Errorf("group status rewrite should reach existing posts, got %q", post.Status)
	}
}

func TestDeleteGroupCascades(t *testing.T) {
	owner := newTestAccount(t)
	member := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPublic)

	if _, err := services.JoinGroup(member, group); err != nil {
		t.Fatalf("unable to join group: %v", err)
	}
	post, err := services.NewPost(owner, &group, "Hello", "World", "")
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}
	if err := services.LikePost(member, post); err != nil {
		t.Fatalf("unable to like post: %v", err)
	}
	if _, err := services.NewComment(member, post, "nice", nil); err != nil {
		t.Fatalf("unable to comment: %v", err)
	}

	if err := services.DeleteGroup(group); err != nil {
		t.Fatalf("unable to delete group: %v", err)
	}

	if _, err := services.GetGroup(group.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Error("group should be gone")
	}
	if _, err := services.GetPost(database.C, post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Error("group posts should be gone")
	}
	var count int64
	database.C.Model(&models.GroupMember{}).Where("group_id = ?", group.ID).Count(&count)
	if count != 0 {
		t.Error("group members should be gone")
	}
	database.C.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&count)
	if count != 0 {
		t.Error("likes on group posts should be gone")
	}
	database.C.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count)
	if count != 0 {
		t.Error("comments on group posts should be gone")
	}
}

func TestTransferGroupOwnership(t *testing.T) {
	owner := newTestAccount(t)
	heir := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPublic)

	group, err := services.TransferGroupOwnership(group, heir)
	if err != nil {
		t.Fatalf("unable to transfer ownership: %v", err)
	}
	if group.OwnerID != heir.ID {
		t.Errorf("owner should be %d, got %d", heir.ID, group.OwnerID)
	}

	member, err := services.GetGroupMember(group, heir.ID)
	if err != nil {
		t.Fatalf("new owner should have a membership row: %v", err)
	}
	if member.Role != models.GroupRoleAdmin {
		t.Errorf("new owner membership role should be admin, got %q", member.Role)
	}
}

func TestJoinGroupRespectsStatus(t *testing.T) {
	owner := newTestAccount(t)
	user := newTestAccount(t)

	private := newTestGroup(t, owner, models.GroupStatusPrivate)
	if _, err := services.JoinGroup(user, private); err == nil {
		t.Error("joining a private group directly should fail")
	}

	public := newTestGroup(t, owner, models.GroupStatusPublic)
	if _, err := services.JoinGroup(user, public); err != nil {
		t.Errorf("joining a public group should succeed: %v", err)
	}
	if _, err := services.JoinGroup(user, public); err == nil {
		t.Error("joining twice should fail")
	}
}

func TestLeaveAndRejoinGroup(t *testing.T) {
	owner := newTestAccount(t)
	user := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPublic)

	if _, err := services.JoinGroup(user, group); err != nil {
		t.Fatalf("unable to join group: %v", err)
	}
	if err := services.LeaveGroup(user, group); err != nil {
		t.Fatalf("unable to leave group: %v", err)
	}
	if err := services.LeaveGroup(user, group); err == nil {
		t.Error("leaving twice should fail")
	}
	if _, err := services.JoinGroup(user, group); err != nil {
		t.Errorf("rejoining after leaving should succeed: %v", err)
	}
}
