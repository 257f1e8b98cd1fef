package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Iultina/currency-converter-bot/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// One connection only, so the in-memory database survives pooling.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&model.User{}, &model.History{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// fakeFetcher counts calls and returns a fixed rate or error.
type fakeFetcher struct {
	rate  float64
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(ctx context.Context) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.rate, nil
}

// fakeSender records deliveries and fails for the chats listed in failFor.
type fakeSender struct {
	sent    []int64
	failFor map[int64]bool
}

func (f *fakeSender) SendText(chatID int64, text string) error {
	if f.failFor[chatID] {
		return errors.New("chat unreachable")
	}
	f.sent = append(f.sent, chatID)
	return nil
}
