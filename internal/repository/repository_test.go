package repository_test

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kindredapp/kindred/internal/db"
)

// setup in-memory DB with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

// seedUserWithProfile creates a user row and its profile for repo tests.
func seedUserWithProfile(t *testing.T, database *gorm.DB, id uint64, p db.Profile) {
	t.Helper()
	user := db.User{
		ID:           id,
		Username:     usernameFor(id),
		Email:        usernameFor(id) + "@example.com",
		PasswordHash: "x",
		Active:       true,
		Gender:       p.Gender,
		LastLoginAt:  time.Now(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %d: %v", id, err)
	}
	p.UserID = id
	if err := database.Create(&p).Error; err != nil {
		t.Fatalf("failed to seed profile %d: %v", id, err)
	}
}

func usernameFor(id uint64) string {
	return fmt.Sprintf("user%d", id)
}
