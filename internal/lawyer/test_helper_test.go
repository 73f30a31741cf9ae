package lawyer

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"divorce-lawyers-api/internal/dma"
	"divorce-lawyers-api/internal/location"
	"divorce-lawyers-api/internal/subscription"
	"divorce-lawyers-api/internal/util"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&location.State{},
		&location.City{},
		&location.ZipCode{},
		&dma.DMA{},
		&dma.DMAZipCode{},
		&LawFirm{},
		&Lawyer{},
		&LawyerServiceArea{},
		&FallbackLawyer{},
		&subscription.SubscriptionType{},
		&subscription.SubscriptionLimit{},
		&subscription.LawyerDMASubscription{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func newTestService(t *testing.T) (*LawyerService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewLawyerService(db, dma.NewResolver(db, nil), subscription.NewRanker(db)), db
}

func seedTiers(t *testing.T, db *gorm.DB) {
	t.Helper()
	tiers := []subscription.SubscriptionType{
		{Name: "premium", DisplayName: "Premium", SortOrder: 1},
		{Name: "basic", DisplayName: "Basic", SortOrder: 2},
		{Name: "free", DisplayName: "Free", SortOrder: 3},
	}
	for i := range tiers {
		if err := db.Create(&tiers[i]).Error; err != nil {
			t.Fatalf("seed tier: %v", err)
		}
	}
}

func seedMarket(t *testing.T, db *gorm.DB, name string, code int, zips ...string) dma.DMA {
	t.Helper()
	market := dma.DMA{Name: name, Code: code}
	if err := db.Create(&market).Error; err != nil {
		t.Fatalf("seed dma: %v", err)
	}
	for _, z := range zips {
		zipRow := location.ZipCode{Code: z}
		if err := db.Create(&zipRow).Error; err != nil {
			t.Fatalf("seed zip: %v", err)
		}
		mapping := dma.DMAZipCode{DMAID: market.ID, ZipCodeID: zipRow.ID}
		if err := db.Create(&mapping).Error; err != nil {
			t.Fatalf("seed mapping: %v", err)
		}
	}
	return market
}

func seedLawyer(t *testing.T, db *gorm.DB, first, last, zip, tier string) Lawyer {
	t.Helper()
	row := Lawyer{
		FirstName:        first,
		LastName:         last,
		Slug:             util.Slugify(first + " " + last),
		OfficeZipCode:    zip,
		SubscriptionType: tier,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed lawyer %s %s: %v", first, last, err)
	}
	return row
}

func seedFirm(t *testing.T, db *gorm.DB, name, zip string) LawFirm {
	t.Helper()
	row := LawFirm{Name: name, Slug: util.Slugify(name), ZipCode: zip}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed firm %s: %v", name, err)
	}
	return row
}
