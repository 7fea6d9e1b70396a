package services

import (
	"time"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup reaps expired password reset tokens and auth
// tickets. Scheduled hourly.
func DoAutoDatabaseCleanup() {
	deadline := time.Now()
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up expired database records...")

	var count int64
	for _, model := range []any{
		&models.PasswordResetToken{},
		&models.AuthTicket{},
	} {
		tx := database.C.Where("expired_at < ?", deadline).Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto database cleanup...")
		}
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Auto database cleanup finished.")
}
