package services_test

import (
	"testing"

	"github.com/meraki-social/meraki/pkg/internal/services"
)

func TestTokenRoundtrip(t *testing.T) {
	account := newTestAccount(t)

	ticket, err := services.NewAuthTicket(account)
	if err != nil {
		t.Fatalf("unable to create ticket: %v", err)
	}
	token, err := services.IssueToken(ticket)
	if err != nil {
		t.Fatalf("unable to issue token: %v", err)
	}

	got, gotTicket, err := services.Authenticate(token)
	if err != nil {
		t.Fatalf("unable to authenticate: %v", err)
	}
	if got.ID != account.ID {
		t.Errorf("authenticated as account %d, want %d", got.ID, account.ID)
	}
	if gotTicket.ID != ticket.ID {
		t.Errorf("authenticated with ticket %d, want %d", gotTicket.ID, ticket.ID)
	}

	if _, _, err := services.Authenticate(token + "x"); err == nil {
		t.Error("a tampered token should be rejected")
	}
}

func TestLogoutInvalidatesTicket(t *testing.T) {
	account := newTestAccount(t)

	ticket, err := services.NewAuthTicket(account)
	if err != nil {
		t.Fatalf("unable to create ticket: %v", err)
	}
	token, err := services.IssueToken(ticket)
	if err != nil {
		t.Fatalf("unable to issue token: %v", err)
	}

	if err := services.InvalidateAuthTicket(ticket); err != nil {
		t.Fatalf("unable to invalidate ticket: %v", err)
	}
	if _, _, err := services.Authenticate(token); err == nil {
		t.Error("a revoked ticket should not authenticate")
	}
}

func TestLogoutAllInvalidatesEverySession(t *testing.T) {
	account := newTestAccount(t)

	var tokens []string
	for i := 0; i < 3; i++ {
		ticket, err := services.NewAuthTicket(account)
		if err != nil {
			t.Fatalf("unable to create ticket: %v", err)
		}
		token, err := services.IssueToken(ticket)
		if err != nil {
			t.Fatalf("unable to issue token: %v", err)
		}
		tokens = append(tokens, token)
	}

	if err := services.InvalidateAllAuthTickets(account); err != nil {
		t.Fatalf("unable to invalidate tickets: %v", err)
	}

	for _, token := range tokens {
		if _, _, err := services.Authenticate(token); err == nil {
			t.Error("every session should be revoked")
		}
	}
}
