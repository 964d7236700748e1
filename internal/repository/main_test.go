package repository

import (
	"log"
	"os"
	"testing"

	"lightbox/internal/config"
	"lightbox/internal/database"

	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Repository DB tests skipped: failed to load test config: %v", err)
		os.Exit(m.Run())
	}

	testDB, err = database.Connect(cfg)
	if err != nil {
		log.Printf("Repository DB tests skipped: test database unavailable: %v", err)
		testDB = nil
	}

	code := m.Run()

	if testDB != nil {
		truncateTables(testDB)
	}
	os.Exit(code)
}

// requireDB skips the calling test when no database is available, so the
// pure tests in this package still run everywhere.
func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("test database unavailable")
	}
	return testDB
}

func truncateTables(db *gorm.DB) {
	db.Exec("TRUNCATE TABLE comment_likes, post_likes, comments, posts, users CASCADE")
}
