package services_test

import (
	"errors"
	"testing"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
	"gorm.io/gorm"
)

func TestAccountPasswords(t *testing.T) {
	account := newTestAccount(t)

	if !services.VerifyPassword(account, "correct horse battery staple") {
		t.Error("the registration password should verify")
	}
	if services.VerifyPassword(account, "wrong") {
		t.Error("a wrong password should not verify")
	}

	if err := services.ChangeAccountPassword(account, "wrong", "new password here"); err == nil {
		t.Error("changing with a wrong old password should fail")
	}
	if err := services.ChangeAccountPassword(account, "correct horse battery staple", "new password here"); err != nil {
		t.Fatalf("unable to change password: %v", err)
	}

	account, err := services.GetAccount(account.ID)
	if err != nil {
		t.Fatalf("unable to reload account: %v", err)
	}
	if !services.VerifyPassword(account, "new password here") {
		t.Error("the new password should verify after the change")
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	account := newTestAccount(t)

	if _, err := services.NewAccount("Other", "User", account.Email, "some password"); err == nil {
		t.Error("registering with a taken email should fail")
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	user := newTestAccount(t)
	other := newTestAccount(t)

	group := newTestGroup(t, user, models.GroupStatusPublic)
	post, err := services.NewPost(user, nil, "Mine", "Body", "")
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}
	if err := services.FollowAccount(user, other); err != nil {
		t.Fatalf("unable to follow: %v", err)
	}
	if err := services.FollowAccount(other, user); err != nil {
		t.Fatalf("unable to follow back: %v", err)
	}

	if err := services.DeleteAccount(user); err != nil {
		t.Fatalf("unable to delete account: %v", err)
	}

	if _, err := services.GetAccount(user.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Error("account should be gone")
	}
	if _, err := services.GetGroup(group.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Error("owned groups should be gone")
	}
	if _, err := services.GetPost(database.C, post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Error("own posts should be gone")
	}

	var count int64
	database.C.Model(&models.Follower{}).
		Where("account_id = ? OR follower_id = ?", user.ID, user.ID).
		Count(&count)
	if count != 0 {
		t.Error("follow edges in both directions should be gone")
	}
}

func TestFollowRules(t *testing.T) {
	user := newTestAccount(t)
	other := newTestAccount(t)

	if err := services.FollowAccount(user, user); err == nil {
		t.Error("self-follow should be rejected")
	}
	if err := services.FollowAccount(user, other); err != nil {
		t.Fatalf("unable to follow: %v", err)
	}
	if err := services.FollowAccount(user, other); err == nil {
		t.Error("duplicate follow should be rejected")
	}
	if !services.IsFollowing(user, other.ID) {
		t.Error("follow edge should exist")
	}
	if services.IsFollowing(other, user.ID) {
		t.Error("the edge is directed, the reverse should not exist")
	}
	if err := services.UnfollowAccount(user, other); err != nil {
		t.Fatalf("unable to unfollow: %v", err)
	}
	if err := services.UnfollowAccount(user, other); err == nil {
		t.Error("unfollowing twice should be rejected")
	}
}
