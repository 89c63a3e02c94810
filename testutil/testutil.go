// Package testutil builds throwaway stores backed by in-memory SQLite.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smarttasks/config"
	"smarttasks/connection"
	"smarttasks/model"
	"smarttasks/services"
)

const MemoryDSN = "file::memory:?_foreign_keys=on"

// Secret is a signing key long enough to pass config validation.
const Secret = "0123456789abcdef0123456789abcdef"

// NewDB opens a fresh migrated database that is closed when t ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := connection.DBConnection(context.Background(), config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    MemoryDSN,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// NewStore wraps a fresh database; a nil mirror means no mirror.
func NewStore(t *testing.T, mirror services.Mirror) *services.Store {
	t.Helper()
	return services.NewStore(NewDB(t), mirror, zerolog.Nop())
}

func AuthConfig() config.AuthConfig {
	return config.AuthConfig{
		Secret:        Secret,
		Issuer:        "smarttasks",
		Audience:      "smarttasks-api",
		TokenLifetime: time.Hour,
	}
}

// NewAccounts returns an account service with the cheapest bcrypt cost.
func NewAccounts(db *gorm.DB, tokens *services.TokenService) *services.AccountService {
	accounts := services.NewAccountService(db, tokens, zerolog.Nop())
	accounts.HashCost = bcrypt.MinCost
	return accounts
}

// CreateUser inserts a user row directly and returns its id.
func CreateUser(t *testing.T, db *gorm.DB, username string) string {
	t.Helper()
	user := model.User{ID: username + "-id", Username: username, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("creating user %s: %v", username, err)
	}
	return user.ID
}
