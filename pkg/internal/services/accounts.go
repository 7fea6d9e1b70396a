package services

import (
	"fmt"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetAccount(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountByEmail(email string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("email = ?", email).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func SearchAccounts(probe string, take int, offset int) ([]models.Account, error) {
	probe = "%" + probe + "%"

	var accounts []models.Account
	err := database.C.
		Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", probe, probe, probe).
		Offset(offset).Limit(take).
		Find(&accounts).Error

	return accounts, err
}

func GetRandomAccounts(take int) ([]models.Account, error) {
	var accounts []models.Account
	err := database.C.Order("RANDOM()").Limit(take).Find(&accounts).Error

	return accounts, err
}

func HashPassword(password string) (string, error) {
	data, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("unable to hash password: %v", err)
	}
	return string(data), nil
}

func VerifyPassword(account models.Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) == nil
}

func NewAccount(firstName, lastName, email, password string) (models.Account, error) {
	var exists models.Account
	if err := database.C.Where("email = ?", email).First(&exists).Error; err == nil {
		return exists, fmt.Errorf("email is already taken")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hash,
		Role:      models.RoleUser,
	}

	if err := database.C.Save(&account).Error; err != nil {
		return account, fmt.Errorf("unable to create account: %v", err)
	}

	return account, nil
}

func EditAccountProfile(account models.Account, firstName, lastName, email string) (models.Account, error) {
	if email != account.Email {
		var exists models.Account
		if err := database.C.Where("email = ? AND id != ?", email, account.ID).First(&exists).Error; err == nil {
			return account, fmt.Errorf("email is already taken")
		}
	}

	account.FirstName = firstName
	account.LastName = lastName
	account.Email = email

	err := database.C.Save(&account).Error

	return account, err
}

func SetAccountAvatar(account models.Account, avatar string) (models.Account, error) {
	account.Avatar = avatar
	err := database.C.Save(&account).Error

	return account, err
}

func ChangeAccountPassword(account models.Account, oldPassword, newPassword string) error {
	if !VerifyPassword(account, oldPassword) {
		return fmt.Errorf("old password did not match")
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	account.Password = hash
	if err := database.C.Save(&account).Error; err != nil {
		return fmt.Errorf("unable to update password: %v", err)
	}

	return nil
}

func SetAccountRole(account models.Account, role string) (models.Account, error) {
	account.Role = role
	err := database.C.Save(&account).Error

	return account, err
}

// DeleteAccount removes the account and everything hanging off it,
// owned groups included.
func DeleteAccount(account models.Account) error {
	var groups []models.Group
	if err := database.C.Where("owner_id = ?", account.ID).Find(&groups).Error; err != nil {
		return fmt.Errorf("unable to load owned groups: %v", err)
	}

	return database.C.Transaction(func(tx *gorm.DB) error {
		for _, group := range groups {
			if err := deleteGroupCascade(tx, group); err != nil {
				return err
			}
		}

		var posts []models.Post
		if err := tx.Where("account_id = ?", account.ID).Find(&posts).Error; err != nil {
			return err
		}
		for _, post := range posts {
			if err := deletePostCascade(tx, post); err != nil {
				return err
			}
		}

		for _, blank := range []any{
			&models.GroupMember{}, &models.GroupInvite{}, &models.GroupRequest{},
			&models.PostLike{}, &models.SavedPost{}, &models.Folder{},
			&models.Comment{}, &models.Report{}, &models.AuthTicket{},
		} {
			if err := tx.Where("account_id = ?", account.ID).Delete(blank).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("account_id = ? OR follower_id = ?", account.ID, account.ID).
			Delete(&models.Follower{}).Error; err != nil {
			return err
		}

		return tx.Delete(&account).Error
	})
}
