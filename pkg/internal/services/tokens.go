package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/golang-jwt/jwt/v5"
	localCache "github.com/meraki-social/meraki/pkg/internal/cache"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/spf13/viper"
)

const authTicketLifecycle = 30 * 24 * time.Hour

func KgAuthTicketCache(id uint) string {
	return fmt.Sprintf("auth-ticket#%d", id)
}

func NewAuthTicket(user models.Account) (models.AuthTicket, error) {
	ticket := models.AuthTicket{
		AccountID: user.ID,
		ExpiredAt: time.Now().Add(authTicketLifecycle),
	}

	if err := database.C.Save(&ticket).Error; err != nil {
		return ticket, fmt.Errorf("unable to create auth ticket: %v", err)
	}

	return ticket, nil
}

func IssueToken(ticket models.AuthTicket) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(int(ticket.ID)),
		ExpiresAt: jwt.NewNumericDate(ticket.ExpiredAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    "meraki",
	}

	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	out, err := tk.SignedString([]byte(viper.GetString("security.jwt_secret")))
	if err != nil {
		return out, fmt.Errorf("unable to sign jwt: %v", err)
	}

	return out, nil
}

func GetAuthTicket(id uint) (models.AuthTicket, error) {
	marshal := marshaler.New(cache.New[any](localCache.S))
	ctx := context.Background()

	if val, err := marshal.Get(ctx, KgAuthTicketCache(id), new(models.AuthTicket)); err == nil {
		return *val.(*models.AuthTicket), nil
	}

	var ticket models.AuthTicket
	if err := database.C.Where("id = ?", id).First(&ticket).Error; err != nil {
		return ticket, err
	}

	_ = marshal.Set(ctx, KgAuthTicketCache(id), ticket,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"auth-ticket", fmt.Sprintf("user#%d", ticket.AccountID)}),
	)

	return ticket, nil
}

// Authenticate resolves a bearer token into the account it was issued for.
func Authenticate(tokenString string) (models.Account, models.AuthTicket, error) {
	var account models.Account
	var ticket models.AuthTicket

	tk, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil || !tk.Valid {
		return account, ticket, fmt.Errorf("invalid token: %v", err)
	}

	claims := tk.Claims.(*jwt.RegisteredClaims)
	ticketID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return account, ticket, fmt.Errorf("invalid token subject")
	}

	ticket, err = GetAuthTicket(uint(ticketID))
	if err != nil {
		return account, ticket, fmt.Errorf("ticket was revoked")
	}
	if time.Now().After(ticket.ExpiredAt) {
		return account, ticket, fmt.Errorf("ticket has expired")
	}

	account, err = GetAccount(ticket.AccountID)
	if err != nil {
		return account, ticket, fmt.Errorf("account does not exist")
	}

	return account, ticket, nil
}

func InvalidateAuthTicket(ticket models.AuthTicket) error {
	marshal := marshaler.New(cache.New[any](localCache.S))
	_ = marshal.Delete(context.Background(), KgAuthTicketCache(ticket.ID))

	return database.C.Delete(&ticket).Error
}

func InvalidateAllAuthTickets(user models.Account) error {
	var tickets []models.AuthTicket
	if err := database.C.Where("account_id = ?", user.ID).Find(&tickets).Error; err != nil {
		return err
	}

	marshal := marshaler.New(cache.New[any](localCache.S))
	for _, ticket := range tickets {
		_ = marshal.Delete(context.Background(), KgAuthTicketCache(ticket.ID))
	}

	return database.C.Where("account_id = ?", user.ID).Delete(&models.AuthTicket{}).Error
}
