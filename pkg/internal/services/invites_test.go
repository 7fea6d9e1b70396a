package services_test

import (
	"testing"

	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func TestInviteLifecycle(t *testing.T) {
	owner := newTestAccount(t)
	guest := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPrivate)

	invite, err := services.NewInvite(group, guest)
	if err != nil {
		t.Fatalf("unable to create invite: %v", err)
	}

	if _, err := services.NewInvite(group, guest); err == nil {
		t.Error("duplicate invite should be rejected")
	}
	if _, err := services.NewInvite(group, owner); err == nil {
		t.Error("inviting an existing member should be rejected")
	}

	member, err := services.AcceptInvite(invite)
	if err != nil {
		t.Fatalf("unable to accept invite: %v", err)
	}
	if member.Role != models.GroupRoleMember {
		t.Errorf("invited member role should be member, got %q", member.Role)
	}
	if !services.IsGroupMember(group, guest.ID) {
		t.Error("accepting an invite should create the membership")
	}

	// The invite was consumed, a second accept has nothing to find.
	if _, err := services.GetInvite(invite.ID); err == nil {
		t.Error("accepted invite should be gone")
	}
	if services.IsInvited(group, guest.ID) {
		t.Error("accepted invite should no longer count as pending")
	}
}

func TestCancelInvite(t *testing.T) {
	owner := newTestAccount(t)
	guest := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPrivate)

	invite, err := services.NewInvite(group, guest)
	if err != nil {
		t.Fatalf("unable to create invite: %v", err)
	}

	if err := services.CancelInvite(invite); err != nil {
		t.Fatalf("unable to cancel invite: %v", err)
	}
	if services.IsInvited(group, guest.ID) {
		t.Error("cancelled invite should be gone")
	}
	if services.IsGroupMember(group, guest.ID) {
		t.Error("cancelling an invite should not create a membership")
	}

	// Re-inviting after a cancel is allowed.
	if _, err := services.NewInvite(group, guest); err != nil {
		t.Errorf("re-inviting after cancel should succeed: %v", err)
	}
}
