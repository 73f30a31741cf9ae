package subscription

import (
	"testing"

	"gorm.io/gorm"
)

func seedPlan(t *testing.T, db *gorm.DB, name string, priceCents, sortOrder int, active bool) SubscriptionPlan {
	t.Helper()
	plan := SubscriptionPlan{
		Name:          name,
		DisplayName:   name,
		PriceCents:    priceCents,
		PriceDisplay:  "$0",
		BillingPeriod: "month",
		SortOrder:     sortOrder,
		Active:        active,
	}
	if err := db.Create(&plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	return plan
}

func TestGetSubscriptionTypes_SortedBySortOrder(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	svc := NewSubscriptionService(db)

	types, err := svc.GetSubscriptionTypes()
	if err != nil {
		t.Fatalf("GetSubscriptionTypes err: %v", err)
	}
	if len(types) != 4 {
		t.Fatalf("expected 4 types, got %d", len(types))
	}
	if types[0].Name != "premium" || types[3].Name != "free" {
		t.Fatalf("unexpected order: %v", types)
	}
}

func TestGetPlans_SkipsInactive_DedupsFeatures(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "pro", 9900, 1, true)
	seedPlan(t, db, "legacy", 100, 2, false)

	features := []SubscriptionPlanFeature{
		{PlanID: plan.ID, FeatureName: "Listings", SortOrder: 2},
		{PlanID: plan.ID, FeatureName: "Listings", SortOrder: 5},
		{PlanID: plan.ID, FeatureName: "Badge", SortOrder: 1},
	}
	for i := range features {
		if err := db.Create(&features[i]).Error; err != nil {
			t.Fatalf("seed feature: %v", err)
		}
	}

	svc := NewSubscriptionService(db)
	plans, err := svc.GetPlans()
	if err != nil {
		t.Fatalf("GetPlans err: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected 1 active plan, got %d", len(plans))
	}
	if len(plans[0].Features) != 2 {
		t.Fatalf("expected deduped features, got %v", plans[0].Features)
	}
	if plans[0].Features[0].FeatureName != "Badge" {
		t.Fatalf("features should sort by sort_order, got %v", plans[0].Features)
	}
}

func TestGetPlansForDMA_AppliesPriceOverride(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "pro", 9900, 1, true)
	other := seedPlan(t, db, "basic", 4900, 2, true)

	price := 14900
	display := "$149"
	if err := db.Create(&SubscriptionPlanDMAOverride{
		PlanID:       plan.ID,
		DMAID:        524,
		PriceCents:   &price,
		PriceDisplay: &display,
		IsActive:     true,
	}).Error; err != nil {
		t.Fatalf("seed override: %v", err)
	}

	svc := NewSubscriptionService(db)
	plans, err := svc.GetPlansForDMA(524)
	if err != nil {
		t.Fatalf("GetPlansForDMA err: %v", err)
	}

	for _, p := range plans {
		switch p.ID {
		case plan.ID:
			if p.PriceCents != 14900 || p.PriceDisplay != "$149" {
				t.Fatalf("override not applied: %+v", p)
			}
		case other.ID:
			if p.PriceCents != 4900 {
				t.Fatalf("untouched plan changed: %+v", p)
			}
		}
	}
}

func TestGetPlansForDMA_InactiveOverrideIgnored(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "pro", 9900, 1, true)

	price := 100
	if err := db.Create(&SubscriptionPlanDMAOverride{
		PlanID:     plan.ID,
		DMAID:      524,
		PriceCents: &price,
		IsActive:   false,
	}).Error; err != nil {
		t.Fatalf("seed override: %v", err)
	}

	svc := NewSubscriptionService(db)
	plans, err := svc.GetPlansForDMA(524)
	if err != nil {
		t.Fatalf("GetPlansForDMA err: %v", err)
	}
	if plans[0].PriceCents != 9900 {
		t.Fatalf("inactive override should not apply, got %d", plans[0].PriceCents)
	}
}

func TestGetPlansForDMA_OtherMarketOverrideIgnored(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "pro", 9900, 1, true)

	price := 100
	if err := db.Create(&SubscriptionPlanDMAOverride{
		PlanID:     plan.ID,
		DMAID:      999,
		PriceCents: &price,
		IsActive:   true,
	}).Error; err != nil {
		t.Fatalf("seed override: %v", err)
	}

	svc := NewSubscriptionService(db)
	plans, err := svc.GetPlansForDMA(524)
	if err != nil {
		t.Fatalf("GetPlansForDMA err: %v", err)
	}
	if plans[0].PriceCents != 9900 {
		t.Fatalf("other market's override should not apply, got %d", plans[0].PriceCents)
	}
}
