package services_test

import (
	"testing"
	"time"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func TestPasswordResetFlow(t *testing.T) {
	account := newTestAccount(t)

	if err := services.RequestPasswordReset("nobody@example.com"); err == nil {
		t.Error("requesting a reset for an unknown email should fail")
	}
	if err := services.RequestPasswordReset(account.Email); err != nil {
		t.Fatalf("unable to request password reset: %v", err)
	}

	var record models.PasswordResetToken
	if err := database.C.Where("email = ?", account.Email).First(&record).Error; err != nil {
		t.Fatalf("reset token should have been stored: %v", err)
	}

	if _, err := services.CheckPasswordResetToken(account.Email, "bogus"); err == nil {
		t.Error("a bogus token should not check out")
	}
	if _, err := services.CheckPasswordResetToken(account.Email, record.Token); err != nil {
		t.Errorf("the issued token should check out: %v", err)
	}

	if err := services.ResetPassword(account.Email, record.Token, "a brand new password"); err != nil {
		t.Fatalf("unable to reset password: %v", err)
	}

	account, err := services.GetAccount(account.ID)
	if err != nil {
		t.Fatalf("unable to reload account: %v", err)
	}
	if !services.VerifyPassword(account, "a brand new password") {
		t.Error("the new password should verify after the reset")
	}

	// The token is single-use.
	if err := services.ResetPassword(account.Email, record.Token, "yet another password"); err == nil {
		t.Error("a consumed token should be rejected")
	}
}

func TestExpiredResetTokenRejected(t *testing.T) {
	account := newTestAccount(t)

	record := models.PasswordResetToken{
		Email:     account.Email,
		Token:     "expired-token-for-test",
		ExpiredAt: time.Now().Add(-time.Minute),
	}
	if err := database.C.Save(&record).Error; err != nil {
		t.Fatalf("unable to seed token: %v", err)
	}

	if _, err := services.CheckPasswordResetToken(account.Email, record.Token); err == nil {
		t.Error("an expired token should be rejected")
	}

	services.DoAutoDatabaseCleanup()

	var count int64
	database.C.Model(&models.PasswordResetToken{}).
		Where("token = ?", record.Token).
		Count(&count)
	if count != 0 {
		t.Error("cleanup should reap expired tokens")
	}
}
