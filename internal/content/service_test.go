package content

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
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
		&ArticleCategory{},
		&Article{},
		&Question{},
		&Video{},
		&Stage{},
		&Emotion{},
		&ContentBlock{},
		&SiteSetting{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func TestGetArticles_PublishedOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	older := Article{Title: "Older", Slug: "older", Status: "published", CreatedAt: time.Now().Add(-time.Hour)}
	newer := Article{Title: "Newer", Slug: "newer", Status: "published", CreatedAt: time.Now()}
	draft := Article{Title: "Draft", Slug: "draft", Status: "draft"}
	for _, a := range []*Article{&older, &newer, &draft} {
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("seed article: %v", err)
		}
	}

	articles, err := svc.GetArticles(0)
	if err != nil {
		t.Fatalf("GetArticles err: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 published articles, got %+v", articles)
	}
	if articles[0].ID != newer.ID {
		t.Fatalf("expected newest first, got %+v", articles[0])
	}
}

func TestGetArticleBySlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	cat := ArticleCategory{Name: "Custody", Slug: "custody"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	published := Article{Title: "Guide", Slug: "guide", Status: "published", CategoryID: &cat.ID}
	draft := Article{Title: "Hidden", Slug: "hidden", Status: "draft"}
	for _, a := range []*Article{&published, &draft} {
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("seed article: %v", err)
		}
	}

	got, err := svc.GetArticleBySlug("guide")
	if err != nil {
		t.Fatalf("GetArticleBySlug err: %v", err)
	}
	if got.Category == nil || got.Category.Slug != "custody" {
		t.Fatalf("expected preloaded category, got %+v", got.Category)
	}

	if _, err := svc.GetArticleBySlug("hidden"); err == nil {
		t.Fatalf("draft article should not resolve by slug")
	}
}

func TestGetVideos_PublishedOrderedByPublishedAt(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	early := time.Now().Add(-2 * time.Hour)
	late := time.Now()
	videos := []Video{
		{Title: "Early", Slug: "early", URL: "https://v/1", Status: "published", PublishedAt: &early},
		{Title: "Late", Slug: "late", URL: "https://v/2", Status: "published", PublishedAt: &late},
		{Title: "Draft", Slug: "draft-video", URL: "https://v/3", Status: "draft"},
	}
	for i := range videos {
		if err := db.Create(&videos[i]).Error; err != nil {
			t.Fatalf("seed video: %v", err)
		}
	}

	got, err := svc.GetVideos(0)
	if err != nil {
		t.Fatalf("GetVideos err: %v", err)
	}
	if len(got) != 2 || got[0].Slug != "late" {
		t.Fatalf("expected published videos newest first, got %+v", got)
	}
}

func TestGetStages_OrderedByIndex(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	stages := []Stage{
		{Name: "Separation", Slug: "separation", OrderIndex: 2},
		{Name: "Decision", Slug: "decision", OrderIndex: 1},
		{Name: "Rebuilding", Slug: "rebuilding", OrderIndex: 3},
	}
	for i := range stages {
		if err := db.Create(&stages[i]).Error; err != nil {
			t.Fatalf("seed stage: %v", err)
		}
	}

	got, err := svc.GetStages()
	if err != nil {
		t.Fatalf("GetStages err: %v", err)
	}
	if len(got) != 3 || got[0].Slug != "decision" || got[2].Slug != "rebuilding" {
		t.Fatalf("expected stages in order, got %+v", got)
	}
}

func TestGetContentBlocks(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	blocks := []ContentBlock{
		{Slug: "hero-main", ComponentType: "hero", Active: true, OrderIndex: 1, Data: datatypes.JSON(`{"headline":"Find a lawyer"}`)},
		{Slug: "faq-top", ComponentType: "faq", Active: true, OrderIndex: 1},
		{Slug: "hero-old", ComponentType: "hero", Active: true, OrderIndex: 2},
	}
	for i := range blocks {
		if err := db.Create(&blocks[i]).Error; err != nil {
			t.Fatalf("seed block: %v", err)
		}
	}
	if err := db.Model(&ContentBlock{}).Where("slug = ?", "hero-old").Update("active", false).Error; err != nil {
		t.Fatalf("deactivate block: %v", err)
	}

	all, err := svc.GetContentBlocks("")
	if err != nil {
		t.Fatalf("GetContentBlocks err: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("inactive blocks must be hidden, got %+v", all)
	}

	heroes, err := svc.GetContentBlocks("hero")
	if err != nil {
		t.Fatalf("GetContentBlocks err: %v", err)
	}
	if len(heroes) != 1 || heroes[0].Slug != "hero-main" {
		t.Fatalf("expected the active hero block, got %+v", heroes)
	}
}

func TestGetSiteSettings(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	settings := []SiteSetting{
		{Key: "footer_text", Value: datatypes.JSON(`"© divorce lawyers"`)},
		{Key: "contact_email", Value: datatypes.JSON(`"hello@example.com"`)},
	}
	for i := range settings {
		if err := db.Create(&settings[i]).Error; err != nil {
			t.Fatalf("seed setting: %v", err)
		}
	}

	all, err := svc.GetSiteSettings(nil)
	if err != nil {
		t.Fatalf("GetSiteSettings err: %v", err)
	}
	if len(all) != 2 || all[0].Key != "contact_email" {
		t.Fatalf("expected settings sorted by key, got %+v", all)
	}

	subset, err := svc.GetSiteSettings([]string{"footer_text"})
	if err != nil {
		t.Fatalf("GetSiteSettings err: %v", err)
	}
	if len(subset) != 1 || subset[0].Key != "footer_text" {
		t.Fatalf("expected only footer_text, got %+v", subset)
	}
}
