package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
)

func ListAdmins() ([]models.Account, error) {
	var accounts []models.Account
	err := database.C.
		Where("role = ?", models.RoleAdmin).
		Order("created_at DESC").
		Find(&accounts).Error

	return accounts, err
}

// CreateAdminAccount promotes an existing account to administrator, or
// creates a fresh one with a generated password. Either way the user
// is notified by mail.
func CreateAdminAccount(firstName, lastName, email string) (models.Account, error) {
	if account, err := GetAccountByEmail(email); err == nil {
		if account.Role == models.RoleAdmin {
			return account, fmt.Errorf("user is already an administrator")
		}
		account, err = SetAccountRole(account, models.RoleAdmin)
		if err != nil {
			return account, fmt.Errorf("unable to promote user: %v", err)
		}
		MailAdminPromoted(account)
		return account, nil
	}

	password := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	account, err := NewAccount(firstName, lastName, email, password)
	if err != nil {
		return account, err
	}
	account, err = SetAccountRole(account, models.RoleAdmin)
	if err != nil {
		return account, err
	}

	MailAdminCredentials(account, password)

	return account, nil
}

func RemoveAdminRole(account models.Account) (models.Account, error) {
	if account.Role != models.RoleAdmin {
		return account, fmt.Errorf("user is not an administrator")
	}
	return SetAccountRole(account, models.RoleUser)
}

// ListAccountsWithStats is the admin user table: every account with
// its post, group and follower counts.
func ListAccountsWithStats(take int, offset int) ([]map[string]any, error) {
	var accounts []models.Account
	if err := database.C.
		Order("created_at DESC").
		Offset(offset).Limit(take).
		Find(&accounts).Error; err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(accounts))
	for _, account := range accounts {
		var postCount, groupCount int64
		database.C.Model(&models.Post{}).Where("account_id = ?", account.ID).Count(&postCount)
		database.C.Model(&models.GroupMember{}).Where("account_id = ?", account.ID).Count(&groupCount)

		out = append(out, map[string]any{
			"account":        account,
			"post_count":     postCount,
			"group_count":    groupCount,
			"follower_count": CountFollowers(account.ID),
		})
	}

	return out, nil
}
