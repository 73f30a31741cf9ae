package lawyer

import (
	"testing"

	"gorm.io/gorm"
)

func seedFallback(t *testing.T, db *gorm.DB, lawyerID uint, order int, active bool) {
	t.Helper()
	row := FallbackLawyer{LawyerID: lawyerID, DisplayOrder: order, Active: active}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed fallback entry: %v", err)
	}
}

func TestGetFallbackLawyers_OrderedActiveOnly(t *testing.T) {
	svc, db := newTestService(t)
	seedTiers(t, db)

	second := seedLawyer(t, db, "Ann", "Avery", "30309", "premium")
	first := seedLawyer(t, db, "Ben", "Brock", "30310", "basic")
	hidden := seedLawyer(t, db, "Cara", "Cole", "30311", "free")

	seedFallback(t, db, second.ID, 2, true)
	seedFallback(t, db, first.ID, 1, true)
	seedFallback(t, db, hidden.ID, 0, false)

	got, err := svc.GetFallbackLawyers()
	if err != nil {
		t.Fatalf("GetFallbackLawyers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 lawyers, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatalf("expected order [%d %d], got [%d %d]", first.ID, second.ID, got[0].ID, got[1].ID)
	}
}

func TestGetFallbackLawyers_EmptyList(t *testing.T) {
	svc, db := newTestService(t)
	seedTiers(t, db)
	seedLawyer(t, db, "Ann", "Avery", "30309", "premium")

	got, err := svc.GetFallbackLawyers()
	if err != nil {
		t.Fatalf("GetFallbackLawyers: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no fallback lawyers, got %d", len(got))
	}
}
