package service

import (
	"testing"

	"github.com/Grendlee/fit-check/internal/domain"
)

func topItem(id, description string) domain.ClosetItem {
	return domain.ClosetItem{
		ID:          id,
		SourceTable: domain.TopsSourceTable,
		Category:    "tech-bro",
		Attributes:  map[string]string{"description": description},
	}
}

func TestTokenize_LowercasesAndSplitsOnNonAlnum(t *testing.T) {
	got := tokenize([]string{"Patagonia or North Face vest", "slim chinos!"})
	want := []string{"patagonia", "or", "north", "face", "vest", "slim", "chinos"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRankItems_SignatureHitGetsBroadAndFlatBonus(t *testing.T) {
	r := domain.StyleRubric{SignatureItems: []string{"vest", "chino"}}
	ranked := DefaultScoringEngine.RankItems(r, []domain.ClosetItem{
		topItem("a", "patagonia vest"),
	})

	if len(ranked) != 1 {
		t.Fatalf("expected 1 ranked item, got %d", len(ranked))
	}
	// "vest" aporta +3 como token amplio y dispara el +10 firma.
	if ranked[0].Score != broadTokenBonus+signatureBonus {
		t.Fatalf("expected score %d, got %d", broadTokenBonus+signatureBonus, ranked[0].Score)
	}
	if len(ranked[0].Reasons) != 1 || ranked[0].Reasons[0] != reasonSignature {
		t.Fatalf("expected signature reason, got %v", ranked[0].Reasons)
	}
}

func TestRankItems_AvoidPenaltyLowersScore(t *testing.T) {
	r := domain.StyleRubric{
		SignatureItems: []string{"blazer"},
		Avoid:          []string{"denim"},
	}

	clean := topItem("clean", "navy blazer")
	tainted := topItem("tainted", "navy blazer with denim patches")

	ranked := DefaultScoringEngine.RankItems(r, []domain.ClosetItem{clean, tainted})

	var cleanScore, taintedScore int
	var taintedReasons []string
	for _, it := range ranked {
		switch it.ID {
		case "clean":
			cleanScore = it.Score
		case "tainted":
			taintedScore = it.Score
			taintedReasons = it.Reasons
		}
	}

	if taintedScore >= cleanScore {
		t.Fatalf("avoid match must score strictly lower: clean=%d tainted=%d", cleanScore, taintedScore)
	}
	found := false
	for _, reason := range taintedReasons {
		if reason == reasonAvoid {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected avoid reason, got %v", taintedReasons)
	}
}

func TestRankItems_EachDistinctAvoidTokenCompounds(t *testing.T) {
	r := domain.StyleRubric{Avoid: []string{"denim jacket", "sneakers"}}
	ranked := DefaultScoringEngine.RankItems(r, []domain.ClosetItem{
		topItem("x", "denim jacket over sneakers"),
	})

	// denim, jacket y sneakers matchean: tres tokens distintos de avoid.
	if ranked[0].Score != -3*avoidPenalty {
		t.Fatalf("expected score %d, got %d", -3*avoidPenalty, ranked[0].Score)
	}
}

func TestRankItems_ShortTokensIgnored(t *testing.T) {
	r := domain.StyleRubric{SignatureItems: []string{"or"}}
	ranked := DefaultScoringEngine.RankItems(r, []domain.ClosetItem{
		topItem("x", "orange coat"),
	})
	if ranked[0].Score != 0 {
		t.Fatalf("tokens shorter than 3 must not score, got %d", ranked[0].Score)
	}
}

func TestRankItems_SortedDescendingAndPermutation(t *testing.T) {
	r := domain.StyleRubric{
		SignatureItems:   []string{"cardigan"},
		PaletteMaterials: []string{"pastels"},
	}
	items := []domain.ClosetItem{
		topItem("none", "leather harness"),
		topItem("both", "pastels cardigan"),
		topItem("palette", "pastels skirt"),
	}

	ranked := DefaultScoringEngine.RankItems(r, items)

	if len(ranked) != len(items) {
		t.Fatalf("ranking must not drop or duplicate items: got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Score < ranked[i].Score {
			t.Fatalf("not sorted descending at %d: %d < %d", i, ranked[i-1].Score, ranked[i].Score)
		}
	}
	seen := map[string]bool{}
	for _, it := range ranked {
		seen[it.ID] = true
	}
	for _, id := range []string{"none", "both", "palette"} {
		if !seen[id] {
			t.Fatalf("item %q missing from ranking", id)
		}
	}
}

func TestRankItems_TiesKeepInputOrder(t *testing.T) {
	r := domain.StyleRubric{SignatureItems: []string{"vest"}}
	items := []domain.ClosetItem{
		topItem("first", "gray vest"),
		topItem("second", "navy vest"),
	}

	ranked := DefaultScoringEngine.RankItems(r, items)
	if ranked[0].ID != "first" || ranked[1].ID != "second" {
		t.Fatalf("equal scores must preserve input order, got %q then %q", ranked[0].ID, ranked[1].ID)
	}
}

func TestRankItems_SlotFromSourceTable(t *testing.T) {
	items := []domain.ClosetItem{
		{ID: "t", SourceTable: domain.TopsSourceTable},
		{ID: "b", SourceTable: "bottoms_generated_v1"},
		{ID: "odd", SourceTable: "anything_else"},
	}

	ranked := DefaultScoringEngine.RankItems(domain.StyleRubric{}, items)
	for _, it := range ranked {
		want := domain.SlotBottom
		if it.ID == "t" {
			want = domain.SlotTop
		}
		if it.Slot != want {
			t.Fatalf("item %q: expected slot %q, got %q", it.ID, want, it.Slot)
		}
	}
}

func TestItemBlob_SkipsMissingFieldsAndLowercases(t *testing.T) {
	it := domain.ClosetItem{
		Category:   "Goth",
		OgFileName: "IMG_01.png",
		Attributes: map[string]string{"color": "Black", "fit": ""},
	}
	blob := itemBlob(it)
	if blob != "goth img_01.png black" {
		t.Fatalf("unexpected blob: %q", blob)
	}

	if itemBlob(domain.ClosetItem{}) != "" {
		t.Fatalf("expected empty blob for empty item")
	}
}
