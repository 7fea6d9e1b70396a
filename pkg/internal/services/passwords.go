package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"gorm.io/gorm"
)

const passwordResetLifecycle = 60 * time.Minute

func RequestPasswordReset(email string) error {
	account, err := GetAccountByEmail(email)
	if err != nil {
		return fmt.Errorf("no account with that email")
	}

	token := models.PasswordResetToken{
		Email:     account.Email,
		Token:     uuid.NewString(),
		ExpiredAt: time.Now().Add(passwordResetLifecycle),
	}

	if err := database.C.Save(&token).Error; err != nil {
		return fmt.Errorf("unable to create reset token: %v", err)
	}

	MailPasswordReset(account, token.Token)

	return nil
}

func CheckPasswordResetToken(email, token string) (models.PasswordResetToken, error) {
	var record models.PasswordResetToken
	if err := database.C.
		Where("email = ? AND token = ?", email, token).
		First(&record).Error; err != nil {
		return record, fmt.Errorf("invalid reset token")
	}
	if time.Now().After(record.ExpiredAt) {
		return record, fmt.Errorf("reset token has expired")
	}

	return record, nil
}

func ResetPassword(email, token, newPassword string) error {
	record, err := CheckPasswordResetToken(email, token)
	if err != nil {
		return err
	}

	account, err := GetAccountByEmail(email)
	if err != nil {
		return fmt.Errorf("no account with that email")
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&account).Update("password", hash).Error; err != nil {
			return err
		}
		if err := tx.Delete(&record).Error; err != nil {
			return err
		}
		return tx.Where("account_id = ?", account.ID).Delete(&models.AuthTicket{}).Error
	})
}
