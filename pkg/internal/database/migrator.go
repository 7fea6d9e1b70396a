package database

import (
	"github.com/meraki-social/meraki/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.AuthTicket{},
	&models.PasswordResetToken{},
	&models.Group{},
	&models.GroupMember{},
	&models.GroupInvite{},
	&models.GroupRequest{},
	&models.Tag{},
	&models.Post{},
	&models.PostLike{},
	&models.Comment{},
	&models.Folder{},
	&models.SavedPost{},
	&models.Follower{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Report{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
