package services_test

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/meraki-social/meraki/pkg/internal/cache"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	viper.Set("security.jwt_secret", "test-secret")

	if err := cache.NewStore(); err != nil {
		panic(err)
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	database.C = db

	if err := database.RunMigration(db); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

var accountSeq atomic.Uint64

func newTestAccount(t *testing.T) models.Account {
	t.Helper()

	seq := accountSeq.Add(1)
	account, err := services.NewAccount(
		"Test",
		fmt.Sprintf("User%d", seq),
		fmt.Sprintf("user%d@example.com", seq),
		"correct horse battery staple",
	)
	if err != nil {
		t.Fatalf("unable to create test account: %v", err)
	}

	return account
}

func newTestAdmin(t *testing.T) models.Account {
	t.Helper()

	account := newTestAccount(t)
	account, err := services.SetAccountRole(account, models.RoleAdmin)
	if err != nil {
		t.Fatalf("unable to promote test account: %v", err)
	}

	return account
}

func newTestGroup(t *testing.T, owner models.Account, status string) models.Group {
	t.Helper()

	group, err := services.NewGroup(owner, "Test Group", "", status)
	if err != nil {
		t.Fatalf("unable to create test group: %v", err)
	}

	return group
}
