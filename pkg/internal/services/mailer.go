package services

import (
	"fmt"

	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

func SendMail(target string, subject string, content string) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", viper.GetString("mailer.from"))
	mail.SetHeader("To", target)
	mail.SetHeader("Subject", subject)
	mail.SetBody("text/plain", content)

	dialer := gomail.NewDialer(
		viper.GetString("mailer.smtp_host"),
		viper.GetInt("mailer.smtp_port"),
		viper.GetString("mailer.username"),
		viper.GetString("mailer.password"),
	)

	return dialer.DialAndSend(mail)
}

// Mail never blocks a request and never rolls one back.
func sendMailInBackground(target string, subject string, content string) {
	go func() {
		if err := SendMail(target, subject, content); err != nil {
			log.Error().Err(err).Str("target", target).Str("subject", subject).
				Msg("An error occurred when sending mail...")
		}
	}()
}

func MailPasswordReset(account models.Account, token string) {
	link := fmt.Sprintf("%s/password/reset?token=%s&email=%s",
		viper.GetString("frontend_url"), token, account.Email)
	sendMailInBackground(account.Email, "Reset your password",
		fmt.Sprintf("Hello %s,\n\nUse the link below to reset your password. It expires in an hour.\n\n%s\n", account.Name(), link))
}

func MailGroupOwnershipTransferred(account models.Account, group models.Group) {
	sendMailInBackground(account.Email, "You are the new owner of "+group.Title,
		fmt.Sprintf("Hello %s,\n\nOwnership of the group %q has been transferred to you.\n", account.Name(), group.Title))
}

func MailAdminCredentials(account models.Account, password string) {
	sendMailInBackground(account.Email, "Your administrator account",
		fmt.Sprintf("Hello %s,\n\nAn administrator account has been created for you.\n\nEmail: %s\nPassword: %s\n\nPlease change the password after your first login.\n", account.Name(), account.Email, password))
}

func MailAdminPromoted(account models.Account) {
	sendMailInBackground(account.Email, "You are now an administrator",
		fmt.Sprintf("Hello %s,\n\nYour account has been granted administrator privileges.\n", account.Name()))
}
