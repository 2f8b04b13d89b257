package service

import (
	"testing"
	"time"

	"github.com/Grendlee/fit-check/internal/domain"
)

func TestMemoryRatingStore_SaveAndGet(t *testing.T) {
	store := NewMemoryRatingStore()

	rating := domain.RatingResult{TargetStyle: "goth", MatchScore: 70, TopMatch: true}
	if err := store.Save("sess-1", rating, time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.TargetStyle != "goth" || !got.TopMatch {
		t.Fatalf("unexpected rating: %+v", got)
	}
}

func TestMemoryRatingStore_MissingSession(t *testing.T) {
	store := NewMemoryRatingStore()
	got, err := store.Get("nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil rating for unknown session, got %+v", got)
	}
}

func TestMemoryRatingStore_ExpiredEntryIsGone(t *testing.T) {
	store := NewMemoryRatingStore()
	if err := store.Save("sess-1", domain.RatingResult{TargetStyle: "goth"}, -time.Second); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Get("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected expired rating to be dropped, got %+v", got)
	}
}

func TestMemoryRatingStore_SaveReplacesPrevious(t *testing.T) {
	store := NewMemoryRatingStore()
	_ = store.Save("sess-1", domain.RatingResult{TargetStyle: "goth", MatchScore: 40}, time.Minute)
	_ = store.Save("sess-1", domain.RatingResult{TargetStyle: "preppy", MatchScore: 90}, time.Minute)

	got, err := store.Get("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.TargetStyle != "preppy" || got.MatchScore != 90 {
		t.Fatalf("expected second rating to replace the first, got %+v", got)
	}
}

func TestMemoryRatingStore_EmptySessionIsNoop(t *testing.T) {
	store := NewMemoryRatingStore()
	if err := store.Save("  ", domain.RatingResult{TargetStyle: "goth"}, time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ := store.Get("  ")
	if got != nil {
		t.Fatalf("expected blank session to store nothing, got %+v", got)
	}
}

func TestNewRedisRatingStore_NilClient(t *testing.T) {
	if store := NewRedisRatingStore(nil); store != nil {
		t.Fatalf("expected nil store for nil client")
	}
}
