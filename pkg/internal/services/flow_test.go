package services_test

import (
	"testing"

	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

// The full happy path: two users register, one founds a private group,
// invites the other, who accepts, posts into the group and comments.
func TestGroupMembershipEndToEnd(t *testing.T) {
	founder := newTestAccount(t)
	friend := newTestAccount(t)

	group := newTestGroup(t, founder, models.GroupStatusPrivate)

	invite, err := services.NewInvite(group, friend)
	if err != nil {
		t.Fatalf("unable to invite: %v", err)
	}
	if _, err := services.AcceptInvite(invite); err != nil {
		t.Fatalf("unable to accept invite: %v", err)
	}
	if !services.IsGroupMember(group, friend.ID) {
		t.Fatal("friend should now be a member")
	}

	post, err := services.NewPost(friend, &group, "First post", "Hello everyone", "")
	if err != nil {
		t.Fatalf("unable to post into the group: %v", err)
	}
	if post.Status != models.PostStatusPrivate {
		t.Errorf("post should inherit the group's private status, got %q", post.Status)
	}

	if _, err := services.NewComment(founder, post, "welcome!", nil); err != nil {
		t.Fatalf("unable to comment: %v", err)
	}

	comments, err := services.ListPostComments(post)
	if err != nil {
		t.Fatalf("unable to list comments: %v", err)
	}
	if len(comments) != 1 {
		t.Errorf("expected 1 comment, got %d", len(comments))
	}
}
