package repository

import (
	"context"
	"testing"
	"time"
)

func TestListPageNewestFirst(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	histories := NewHistoryRepository(db)
	ctx := context.Background()

	user, err := users.GetOrCreate(ctx, 1)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	// Insert out of chronological order on purpose.
	for _, offset := range []int{2, 0, 3, 1} {
		if _, err := histories.Append(ctx, user.ID, 80+float64(offset), base.Add(time.Duration(offset)*time.Hour)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, total, err := histories.ListPage(ctx, user.ID, 1, 10)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.After(entries[i-1].Date) {
			t.Errorf("entries out of order: %v before %v", entries[i-1].Date, entries[i].Date)
		}
	}
	if entries[0].Rate != 83 {
		t.Errorf("newest entry rate = %v, want 83", entries[0].Rate)
	}
}

func TestListPageWindows(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	histories := NewHistoryRepository(db)
	ctx := context.Background()

	user, err := users.GetOrCreate(ctx, 1)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		if _, err := histories.Append(ctx, user.ID, float64(i), base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, total, err := histories.ListPage(ctx, user.ID, 2, 5)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 12 {
		t.Errorf("total = %d, want 12", total)
	}
	if len(entries) != 5 {
		t.Fatalf("page 2 has %d entries, want 5", len(entries))
	}
	// Newest-first: page 2 of 12 holds rates 6..2.
	if entries[0].Rate != 6 || entries[4].Rate != 2 {
		t.Errorf("page 2 spans rates %v..%v, want 6..2", entries[0].Rate, entries[4].Rate)
	}
}

func TestListPageOutOfRange(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	histories := NewHistoryRepository(db)
	ctx := context.Background()

	user, err := users.GetOrCreate(ctx, 1)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if _, err := histories.Append(ctx, user.ID, 81.5, time.Now()); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries, total, err := histories.ListPage(ctx, user.ID, 9, 5)
	if err != nil {
		t.Fatalf("ListPage out of range: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("out-of-range page has %d entries, want 0", len(entries))
	}
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
}

func TestListPageScopedToUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	histories := NewHistoryRepository(db)
	ctx := context.Background()

	alice, _ := users.GetOrCreate(ctx, 1)
	bob, _ := users.GetOrCreate(ctx, 2)

	if _, err := histories.Append(ctx, alice.ID, 81, time.Now()); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := histories.Append(ctx, bob.ID, 82, time.Now()); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries, total, err := histories.ListPage(ctx, alice.ID, 1, 10)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 1 || len(entries) != 1 || entries[0].Rate != 81 {
		t.Errorf("got %d entries (total %d), want exactly alice's single entry", len(entries), total)
	}
}
