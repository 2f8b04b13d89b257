package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/Grendlee/fit-check/internal/domain"
)

type mockClosetRepo struct {
	items []domain.ClosetItem
	err   error

	calls int
}

func (m *mockClosetRepo) FindByCategory(ctx context.Context, category string) ([]domain.ClosetItem, error) {
	m.calls++
	return m.items, m.err
}

func closetTop(id, description string) domain.ClosetItem {
	return domain.ClosetItem{
		ID:          id,
		SourceTable: domain.TopsSourceTable,
		Attributes:  map[string]string{"description": description},
	}
}

func closetBottom(id, description string) domain.ClosetItem {
	return domain.ClosetItem{
		ID:          id,
		SourceTable: "bottoms_generated_v1",
		Attributes:  map[string]string{"description": description},
	}
}

func TestSuggest_FlagsFromPriorRatingSameStyle(t *testing.T) {
	repo := &mockClosetRepo{items: []domain.ClosetItem{
		closetTop("t1", "cardigan"),
		closetBottom("b1", "midi skirt"),
	}}
	svc := NewSuggestionService(repo, zap.NewNop())

	prior := &domain.RatingResult{TargetStyle: "teacher", TopMatch: true, BottomMatch: false}
	got, err := svc.Suggest(context.Background(), "teacher", prior)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}

	if got.NeedTops || !got.NeedBottoms {
		t.Fatalf("expected needTops=false needBottoms=true, got %v/%v", got.NeedTops, got.NeedBottoms)
	}
	// Solo bottoms en los picks y sin combos (una sola mitad en juego).
	for _, it := range got.TopPicks {
		if it.Slot != domain.SlotBottom {
			t.Fatalf("expected only bottom picks, got slot %q", it.Slot)
		}
	}
	if len(got.Outfits) != 0 {
		t.Fatalf("composer must not run when only one slot is needed, got %d outfits", len(got.Outfits))
	}
}

func TestSuggest_PriorRatingForOtherStyleIsIgnored(t *testing.T) {
	repo := &mockClosetRepo{items: []domain.ClosetItem{
		closetTop("t1", "leather jacket"),
		closetBottom("b1", "boots"),
	}}
	svc := NewSuggestionService(repo, zap.NewNop())

	prior := &domain.RatingResult{TargetStyle: "teacher", TopMatch: true, BottomMatch: true}
	got, err := svc.Suggest(context.Background(), "goth", prior)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !got.NeedTops || !got.NeedBottoms {
		t.Fatalf("rating for another style carries no information, got %v/%v", got.NeedTops, got.NeedBottoms)
	}
	if len(got.Outfits) == 0 {
		t.Fatalf("expected outfits when both slots are needed")
	}
}

func TestSuggest_NoPriorRatingDefaultsToBoth(t *testing.T) {
	repo := &mockClosetRepo{items: []domain.ClosetItem{closetTop("t1", "vest")}}
	svc := NewSuggestionService(repo, zap.NewNop())

	got, err := svc.Suggest(context.Background(), "tech-bro", nil)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !got.NeedTops || !got.NeedBottoms {
		t.Fatalf("expected both flags true without prior rating, got %v/%v", got.NeedTops, got.NeedBottoms)
	}
}

func TestSuggest_AlreadyMatchingDoesZeroWork(t *testing.T) {
	repo := &mockClosetRepo{items: []domain.ClosetItem{closetTop("t1", "vest")}}
	svc := NewSuggestionService(repo, zap.NewNop())

	prior := &domain.RatingResult{TargetStyle: "tech-bro", TopMatch: true, BottomMatch: true}
	got, err := svc.Suggest(context.Background(), "tech-bro", prior)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}

	if got.NeedTops || got.NeedBottoms {
		t.Fatalf("expected both flags false, got %v/%v", got.NeedTops, got.NeedBottoms)
	}
	if len(got.TopPicks) != 0 || len(got.Outfits) != 0 {
		t.Fatalf("expected empty payload, got %+v", got)
	}
	if repo.calls != 0 {
		t.Fatalf("closet must not be fetched when nothing is needed, got %d calls", repo.calls)
	}
}

func TestSuggest_TopPicksCappedAtEight(t *testing.T) {
	repo := &mockClosetRepo{}
	for i := 0; i < 10; i++ {
		repo.items = append(repo.items, closetTop(fmt.Sprintf("t%d", i), "vest"))
		repo.items = append(repo.items, closetBottom(fmt.Sprintf("b%d", i), "chinos"))
	}
	svc := NewSuggestionService(repo, zap.NewNop())

	got, err := svc.Suggest(context.Background(), "tech-bro", nil)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}

	// 6 tops + 6 bottoms truncados a 8 en total.
	if len(got.TopPicks) != topPicksTotal {
		t.Fatalf("expected %d top picks, got %d", topPicksTotal, len(got.TopPicks))
	}
	topCount := 0
	for _, it := range got.TopPicks {
		if it.Slot == domain.SlotTop {
			topCount++
		}
	}
	if topCount != topPicksPerSlot {
		t.Fatalf("expected %d tops before truncation, got %d", topPicksPerSlot, topCount)
	}
}

func TestSuggest_MissingStyleAndRubric(t *testing.T) {
	svc := NewSuggestionService(&mockClosetRepo{}, zap.NewNop())

	_, err := svc.Suggest(context.Background(), "", nil)
	if !errors.Is(err, domain.ErrMissingStyle) {
		t.Fatalf("expected ErrMissingStyle, got %v", err)
	}

	_, err = svc.Suggest(context.Background(), "unlisted-style", nil)
	if !errors.Is(err, domain.ErrMissingRubric) {
		t.Fatalf("expected ErrMissingRubric, got %v", err)
	}
}

func TestSuggest_ClosetFailureSurfaces(t *testing.T) {
	upstream := errors.New("closet unavailable")
	svc := NewSuggestionService(&mockClosetRepo{err: upstream}, zap.NewNop())

	_, err := svc.Suggest(context.Background(), "goth", nil)
	if !errors.Is(err, upstream) {
		t.Fatalf("expected closet error surfaced, got %v", err)
	}
}
