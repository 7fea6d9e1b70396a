package services_test

import (
	"testing"

	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func TestToggleRequest(t *testing.T) {
	owner := newTestAccount(t)
	user := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPrivate)

	pending, err := services.ToggleRequest(user, group)
	if err != nil {
		t.Fatalf("unable to file request: %v", err)
	}
	if !pending {
		t.Error("first toggle should file the request")
	}
	if !services.IsRequesting(group, user.ID) {
		t.Error("request should be pending")
	}

	pending, err = services.ToggleRequest(user, group)
	if err != nil {
		t.Fatalf("unable to withdraw request: %v", err)
	}
	if pending {
		t.Error("second toggle should withdraw the request")
	}
	if services.IsRequesting(group, user.ID) {
		t.Error("request should be gone after withdrawal")
	}

	if _, err := services.ToggleRequest(owner, group); err == nil {
		t.Error("members should not be able to file a join request")
	}
}

func TestAcceptRequestConsumesIt(t *testing.T) {
	owner := newTestAccount(t)
	user := newTestAccount(t)
	group := newTestGroup(t, owner, models.GroupStatusPrivate)

	if _, err := services.ToggleRequest(user, group); err != nil {
		t.Fatalf("unable to file request: %v", err)
	}
	request, err := services.GetRequestBy(group, user.ID)
	if err != nil {
		t.Fatalf("unable to load request: %v", err)
	}

	member, err := services.AcceptRequest(request)
	if err != nil {
		t.Fatalf("unable to accept request: %v", err)
	}
	if member.Role != models.GroupRoleMember {
		t.Errorf("accepted member role should be member, got %q", member.Role)
	}
	if !services.IsGroupMember(group, user.ID) {
		t.Error("accepting a request should create the membership")
	}

	// Accepting the same request id again finds nothing.
	if _, err := services.GetRequest(request.ID); err == nil {
		t.Error("accepted request should be gone")
	}
}
