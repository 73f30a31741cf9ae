package subscription

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&SubscriptionType{},
		&SubscriptionLimit{},
		&LawyerDMASubscription{},
		&SubscriptionPlan{},
		&SubscriptionPlanFeature{},
		&SubscriptionPlanDMAOverride{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func seedTiers(t *testing.T, db *gorm.DB) {
	t.Helper()
	tiers := []SubscriptionType{
		{Name: "premium", DisplayName: "Premium", SortOrder: 1},
		{Name: "professional", DisplayName: "Professional", SortOrder: 2},
		{Name: "basic", DisplayName: "Basic", SortOrder: 3},
		{Name: "free", DisplayName: "Free", SortOrder: 4},
	}
	for i := range tiers {
		if err := db.Create(&tiers[i]).Error; err != nil {
			t.Fatalf("seed tier: %v", err)
		}
	}
}

func intPtr(n int) *int { return &n }

func TestRank_GroupsByTier_InSortOrder(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	r := NewRanker(db)

	candidates := []Candidate{
		{ID: 1, DefaultTier: "free"},
		{ID: 2, DefaultTier: "premium"},
		{ID: 3, DefaultTier: "basic"},
		{ID: 4, DefaultTier: "premium"},
	}

	out := r.Rank(context.Background(), candidates, nil)

	want := []uint{2, 4, 3, 1}
	if len(out.OrderedIDs) != len(want) {
		t.Fatalf("expected %d ids, got %v", len(want), out.OrderedIDs)
	}
	for i, id := range want {
		if out.OrderedIDs[i] != id {
			t.Fatalf("position %d: expected %d, got %v", i, id, out.OrderedIDs)
		}
	}

	if len(out.Groups["premium"]) != 2 {
		t.Fatalf("expected 2 premium, got %v", out.Groups["premium"])
	}
	if len(out.Types) != 4 {
		t.Fatalf("expected 4 types, got %d", len(out.Types))
	}
}

func TestRank_PreservesAggregationOrderWithinTier(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	r := NewRanker(db)

	candidates := []Candidate{
		{ID: 30, DefaultTier: "basic"},
		{ID: 10, DefaultTier: "basic"},
		{ID: 20, DefaultTier: "basic"},
	}

	out := r.Rank(context.Background(), candidates, nil)

	want := []uint{30, 10, 20}
	for i, id := range want {
		if out.OrderedIDs[i] != id {
			t.Fatalf("expected order %v, got %v", want, out.OrderedIDs)
		}
	}
}

func TestRank_AppliesGlobalCap(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	if err := db.Create(&SubscriptionLimit{
		LocationType: "global", SubscriptionType: "premium", MaxLawyers: intPtr(2),
	}).Error; err != nil {
		t.Fatalf("seed limit: %v", err)
	}
	r := NewRanker(db)

	candidates := []Candidate{
		{ID: 1, DefaultTier: "premium"},
		{ID: 2, DefaultTier: "premium"},
		{ID: 3, DefaultTier: "premium"},
		{ID: 4, DefaultTier: "free"},
	}

	out := r.Rank(context.Background(), candidates, []uint{7})

	if len(out.Groups["premium"]) != 2 {
		t.Fatalf("expected premium capped at 2, got %v", out.Groups["premium"])
	}
	if out.Groups["premium"][0] != 1 || out.Groups["premium"][1] != 2 {
		t.Fatalf("cap should keep the first candidates, got %v", out.Groups["premium"])
	}
	if len(out.OrderedIDs) != 3 {
		t.Fatalf("expected 3 ids after cap, got %v", out.OrderedIDs)
	}
}

func TestRank_DMACapWinsOverGlobal(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	limits := []SubscriptionLimit{
		{LocationType: "global", SubscriptionType: "premium", MaxLawyers: intPtr(5)},
		{LocationType: "dma", LocationValue: "7", SubscriptionType: "premium", MaxLawyers: intPtr(1)},
	}
	for i := range limits {
		if err := db.Create(&limits[i]).Error; err != nil {
			t.Fatalf("seed limit: %v", err)
		}
	}
	r := NewRanker(db)

	candidates := []Candidate{
		{ID: 1, DefaultTier: "premium"},
		{ID: 2, DefaultTier: "premium"},
	}

	out := r.Rank(context.Background(), candidates, []uint{7})

	if len(out.Groups["premium"]) != 1 {
		t.Fatalf("expected dma cap 1 to win, got %v", out.Groups["premium"])
	}
}

func TestRank_BestOverrideTierWins(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	if err := db.Create(&LawyerDMASubscription{
		LawyerID: 1, DMAID: 7, SubscriptionType: "premium",
	}).Error; err != nil {
		t.Fatalf("seed override: %v", err)
	}
	r := NewRanker(db)

	candidates := []Candidate{
		{ID: 1, DefaultTier: "free"},
		{ID: 2, DefaultTier: "basic"},
	}

	out := r.Rank(context.Background(), candidates, []uint{7})

	if len(out.Groups["premium"]) != 1 || out.Groups["premium"][0] != 1 {
		t.Fatalf("expected lawyer 1 promoted to premium, got %v", out.Groups)
	}
	if out.OrderedIDs[0] != 1 {
		t.Fatalf("promoted lawyer should rank first, got %v", out.OrderedIDs)
	}
}

func TestRank_OverrideOutsideScopeIgnored(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	if err := db.Create(&LawyerDMASubscription{
		LawyerID: 1, DMAID: 99, SubscriptionType: "premium",
	}).Error; err != nil {
		t.Fatalf("seed override: %v", err)
	}
	r := NewRanker(db)

	out := r.Rank(context.Background(), []Candidate{{ID: 1, DefaultTier: "free"}}, []uint{7})

	if len(out.Groups["free"]) != 1 {
		t.Fatalf("expected lawyer kept in free, got %v", out.Groups)
	}
}

func TestRank_OverrideDemotesInItsOwnDMA(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	if err := db.Create(&LawyerDMASubscription{
		LawyerID: 1, DMAID: 7, SubscriptionType: "basic",
	}).Error; err != nil {
		t.Fatalf("seed override: %v", err)
	}
	r := NewRanker(db)

	out := r.Rank(context.Background(), []Candidate{{ID: 1, DefaultTier: "premium"}}, []uint{7})

	if len(out.Groups["basic"]) != 1 || out.Groups["basic"][0] != 1 {
		t.Fatalf("override should be authoritative in its market, got %v", out.Groups)
	}
	if len(out.Groups["premium"]) != 0 {
		t.Fatalf("default tier should not survive a present override, got %v", out.Groups)
	}
}

func TestRank_MultiDMA_BestPerMarketTierWins(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	// Demoted in market 7, no override in market 8: the default applies there
	// and wins the combined ranking.
	if err := db.Create(&LawyerDMASubscription{
		LawyerID: 1, DMAID: 7, SubscriptionType: "basic",
	}).Error; err != nil {
		t.Fatalf("seed override: %v", err)
	}
	r := NewRanker(db)

	out := r.Rank(context.Background(), []Candidate{{ID: 1, DefaultTier: "premium"}}, []uint{7, 8})

	if len(out.Groups["premium"]) != 1 {
		t.Fatalf("expected the default tier from the uncovered market to win, got %v", out.Groups)
	}
}

func TestRank_MultiDMA_OverriddenEverywhereUsesBestOverride(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	overrides := []LawyerDMASubscription{
		{LawyerID: 1, DMAID: 7, SubscriptionType: "basic"},
		{LawyerID: 1, DMAID: 8, SubscriptionType: "professional"},
	}
	for i := range overrides {
		if err := db.Create(&overrides[i]).Error; err != nil {
			t.Fatalf("seed override: %v", err)
		}
	}
	r := NewRanker(db)

	out := r.Rank(context.Background(), []Candidate{{ID: 1, DefaultTier: "premium"}}, []uint{7, 8})

	if len(out.Groups["professional"]) != 1 {
		t.Fatalf("expected the best per-market tier, got %v", out.Groups)
	}
}

func TestCombineCaps_MultiDMA_UnlimitedWins(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	limits := []SubscriptionLimit{
		{LocationType: "dma", LocationValue: "1", SubscriptionType: "premium", MaxLawyers: intPtr(3)},
		{LocationType: "dma", LocationValue: "2", SubscriptionType: "premium", MaxLawyers: nil},
	}
	for i := range limits {
		if err := db.Create(&limits[i]).Error; err != nil {
			t.Fatalf("seed limit: %v", err)
		}
	}
	r := NewRanker(db)

	caps := r.CapsForDMAs(context.Background(), []uint{1, 2})
	if caps["premium"] != nil {
		t.Fatalf("expected unlimited when any DMA is unlimited, got %v", *caps["premium"])
	}
}

func TestCombineCaps_MultiDMA_MinWins(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	limits := []SubscriptionLimit{
		{LocationType: "dma", LocationValue: "1", SubscriptionType: "premium", MaxLawyers: intPtr(3)},
		{LocationType: "dma", LocationValue: "2", SubscriptionType: "premium", MaxLawyers: intPtr(5)},
	}
	for i := range limits {
		if err := db.Create(&limits[i]).Error; err != nil {
			t.Fatalf("seed limit: %v", err)
		}
	}
	r := NewRanker(db)

	caps := r.CapsForDMAs(context.Background(), []uint{1, 2})
	if caps["premium"] == nil || *caps["premium"] != 3 {
		t.Fatalf("expected min cap 3, got %v", caps["premium"])
	}
}

func TestCombineCaps_DMAWithoutRowFallsBackToGlobal(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	limits := []SubscriptionLimit{
		{LocationType: "global", SubscriptionType: "premium", MaxLawyers: intPtr(4)},
		{LocationType: "dma", LocationValue: "1", SubscriptionType: "premium", MaxLawyers: intPtr(2)},
	}
	for i := range limits {
		if err := db.Create(&limits[i]).Error; err != nil {
			t.Fatalf("seed limit: %v", err)
		}
	}
	r := NewRanker(db)

	// DMA 2 has no row of its own, so the global 4 applies there, and the
	// combined cap is min(2, 4).
	caps := r.CapsForDMAs(context.Background(), []uint{1, 2})
	if caps["premium"] == nil || *caps["premium"] != 2 {
		t.Fatalf("expected combined cap 2, got %v", caps["premium"])
	}
}

func TestRank_UnknownTierGroupedAfterKnown(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	r := NewRanker(db)

	candidates := []Candidate{
		{ID: 1, DefaultTier: "mystery"},
		{ID: 2, DefaultTier: "free"},
	}

	out := r.Rank(context.Background(), candidates, nil)

	if out.OrderedIDs[0] != 2 || out.OrderedIDs[1] != 1 {
		t.Fatalf("expected known tier first, got %v", out.OrderedIDs)
	}
}

func TestRank_EmptyCandidates(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	r := NewRanker(db)

	out := r.Rank(context.Background(), nil, nil)

	if len(out.OrderedIDs) != 0 {
		t.Fatalf("expected no ids, got %v", out.OrderedIDs)
	}
	if len(out.Types) != 4 {
		t.Fatalf("types should still be returned, got %d", len(out.Types))
	}
}
