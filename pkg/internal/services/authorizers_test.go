package services_test

import (
	"testing"

	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func TestIsGroupAdmin(t *testing.T) {
	owner := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPublic)

	if !services.IsGroupAdmin(owner, group) {
		t.Error("owner should hold group admin authority")
	}

	siteAdmin := newTestAdmin(t)
	if !services.IsGroupAdmin(siteAdmin, group) {
		t.Error("site admin should hold group admin authority without membership")
	}

	stranger := newTestAccount(t)
	if services.IsGroupAdmin(stranger, group) {
		t.Error("stranger should not hold group admin authority")
	}

	member, err := services.JoinGroup(stranger, group)
	if err != nil {
		t.Fatalf("unable to join group: %v", err)
	}
	if services.IsGroupAdmin(stranger, group) {
		t.Error("plain member should not hold group admin authority")
	}

	if _, err := services.EditMemberRole(member, models.GroupRoleAdmin); err != nil {
		t.Fatalf("unable to promote member: %v", err)
	}
	if !services.IsGroupAdmin(stranger, group) {
		t.Error("promoted member should hold group admin authority")
	}

	// Demotion takes effect on the next evaluation, nothing is cached.
	member, err = services.GetGroupMember(group, stranger.ID)
	if err != nil {
		t.Fatalf("unable to reload member: %v", err)
	}
	if _, err := services.EditMemberRole(member, models.GroupRoleMember); err != nil {
		t.Fatalf("unable to demote member: %v", err)
	}
	if services.IsGroupAdmin(stranger, group) {
		t.Error("demoted member should lose group admin authority immediately")
	}
}

func TestCanRemoveMember(t *testing.T) {
	owner := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPublic)

	groupAdminUser := newTestAccount(t)
	groupAdmin, err := services.JoinGroup(groupAdminUser, group)
	if err != nil {
		t.Fatalf("unable to join group: %v", err)
	}
	groupAdmin, err = services.EditMemberRole(groupAdmin, models.GroupRoleAdmin)
	if err != nil {
		t.Fatalf("unable to promote member: %v", err)
	}

	otherAdminUser := newTestAccount(t)
	otherAdmin, err := services.JoinGroup(otherAdminUser, group)
	if err != nil {
		t.Fatalf("unable to join group: %v", err)
	}
	otherAdmin, err = services.EditMemberRole(otherAdmin, models.GroupRoleAdmin)
	if err != nil {
		t.Fatalf("unable to promote member: %v", err)
	}

	plainUser := newTestAccount(t)
	plain, err := services.JoinGroup(plainUser, group)
	if err != nil {
		t.Fatalf("unable to join group: %v", err)
	}

	if !services.CanRemoveMember(groupAdminUser, group, plain) {
		t.Error("group admin should be able to remove a plain member")
	}
	if services.CanRemoveMember(groupAdminUser, group, otherAdmin) {
		t.Error("group admin with plain site role should not remove another group admin")
	}
	if !services.CanRemoveMember(groupAdminUser, group, groupAdmin) {
		t.Error("anyone may remove themselves")
	}
	if !services.CanRemoveMember(owner, group, otherAdmin) {
		t.Error("owner should be able to remove a group admin")
	}

	siteAdmin := newTestAdmin(t)
	if !services.CanRemoveMember(siteAdmin, group, otherAdmin) {
		t.Error("site admin should be able to remove a group admin")
	}

	if services.CanRemoveMember(plainUser, group, otherAdmin) {
		t.Error("plain member should not remove anyone but themselves")
	}
}

func TestCanEditMemberRole(t *testing.T) {
	owner := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPublic)

	groupAdminUser := newTestAccount(t)
	groupAdmin, err := services.JoinGroup(groupAdminUser, group)
	if err != nil {
		t.Fatalf("unable to join group: %v", err)
	}
	if _, err := services.EditMemberRole(groupAdmin, models.GroupRoleAdmin); err != nil {
		t.Fatalf("unable to promote member: %v", err)
	}

	otherAdminUser := newTestAccount(t)
	otherAdmin, err := services.JoinGroup(otherAdminUser, group)
	if err != nil {
		t.Fatalf("unable to join group: %v", err)
	}
	otherAdmin, err = services.EditMemberRole(otherAdmin, models.GroupRoleAdmin)
	if err != nil {
		t.Fatalf("unable to promote member: %v", err)
	}

	plainUser := newTestAccount(t)
	plain, err := services.JoinGroup(plainUser, group)
	if err != nil {
		t.Fatalf("unable to join group: %v", err)
	}

	if !services.CanEditMemberRole(groupAdminUser, group, plain) {
		t.Error("group admin should be able to re-role a plain member")
	}
	if services.CanEditMemberRole(groupAdminUser, group, otherAdmin) {
		t.Error("group admin with plain site role should not re-role another group admin")
	}
	if services.CanEditMemberRole(owner, group, otherAdmin) {
		t.Error("owner re-roles admins through promote and demote, not the generic path")
	}
	if services.CanEditMemberRole(plainUser, group, plain) {
		t.Error("plain member should not re-role anyone")
	}

	siteAdmin := newTestAdmin(t)
	if !services.CanEditMemberRole(siteAdmin, group, otherAdmin) {
		t.Error("site admin should be able to re-role a group admin")
	}
}

func TestCanReadPost(t *testing.T) {
	author := newTestAccount(t)
	stranger := newTestAccount(t)
	siteAdmin := newTestAdmin(t)

	post, err := services.NewPost(author, nil, "Title", "Body", "")
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}

	if !services.CanReadPost(stranger, post) {
		t.Error("public post should be readable by anyone")
	}

	group := newTestGroup(t, author, models.GroupStatusPrivate)
	private, err := services.NewPost(author, &group, "Secret", "Body", "")
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}
	if private.Status != models.PostStatusPrivate {
		t.Fatalf("post in private group should inherit private status, got %q", private.Status)
	}

	if services.CanReadPost(stranger, private) {
		t.Error("private post should not be readable by strangers")
	}
	if !services.CanReadPost(author, private) {
		t.Error("private post should be readable by its author")
	}
	if !services.CanReadPost(siteAdmin, private) {
		t.Error("private post should be readable by site admins")
	}
}
