package contact

import (
	"errors"
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

	if err := db.AutoMigrate(&ContactSubmission{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func TestSubmit(t *testing.T) {
	svc := NewContactService(newTestDB(t))

	lawyerID := uint(7)
	got, err := svc.Submit(SubmitContactRequest{
		Name:     "  Jane Doe  ",
		Email:    " jane@example.com ",
		Phone:    "555-0100",
		ZipCode:  "30309",
		Message:  " need a consultation ",
		LawyerID: &lawyerID,
	})
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if got.ID == 0 {
		t.Fatalf("expected persisted submission")
	}
	if got.Name != "Jane Doe" || got.Email != "jane@example.com" || got.Message != "need a consultation" {
		t.Fatalf("expected trimmed fields, got %+v", got)
	}
	if got.Status != "new" {
		t.Fatalf("status = %q, want new", got.Status)
	}
	if got.LawyerID == nil || *got.LawyerID != 7 {
		t.Fatalf("lawyer id not kept: %+v", got.LawyerID)
	}
}

func TestSubmit_ScrubsMalformedZip(t *testing.T) {
	svc := NewContactService(newTestDB(t))

	got, err := svc.Submit(SubmitContactRequest{Name: "Jane", Email: "jane@example.com", ZipCode: "30a09"})
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if got.ZipCode != "" {
		t.Fatalf("malformed zip should be dropped, got %q", got.ZipCode)
	}

	got, err = svc.Submit(SubmitContactRequest{Name: "Jane", Email: "jane@example.com", ZipCode: "30309-1234"})
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if got.ZipCode != "30309-1234" {
		t.Fatalf("zip+4 should be kept, got %q", got.ZipCode)
	}
}

func TestListAndUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	first, err := svc.Submit(SubmitContactRequest{Name: "First", Email: "first@example.com"})
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	second, err := svc.Submit(SubmitContactRequest{Name: "Second", Email: "second@example.com"})
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	// Separate the created_at timestamps so ordering is deterministic.
	if err := db.Model(&ContactSubmission{}).Where("id = ?", second.ID).
		Update("created_at", time.Now().Add(time.Minute)).Error; err != nil {
		t.Fatalf("bump timestamp: %v", err)
	}

	if err := svc.UpdateStatus(first.ID, "contacted"); err != nil {
		t.Fatalf("UpdateStatus err: %v", err)
	}

	all, err := svc.List("", nil, nil)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(all) != 2 || all[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", all)
	}

	contacted, err := svc.List("contacted", nil, nil)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(contacted) != 1 || contacted[0].ID != first.ID {
		t.Fatalf("expected only the contacted submission, got %+v", contacted)
	}
}

func TestList_DateWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	old, err := svc.Submit(SubmitContactRequest{Name: "Old", Email: "old@example.com"})
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	recent, err := svc.Submit(SubmitContactRequest{Name: "Recent", Email: "recent@example.com"})
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if err := db.Model(&ContactSubmission{}).Where("id = ?", old.ID).
		Update("created_at", time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	from := "2026-02-01"
	rows, err := svc.List("", &from, nil)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != recent.ID {
		t.Fatalf("expected only the recent submission, got %+v", rows)
	}

	to := "2026-01-10"
	rows, err = svc.List("", nil, &to)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != old.ID {
		t.Fatalf("date-only end should include the whole day, got %+v", rows)
	}

	bad := "01/10/2026"
	if _, err := svc.List("", &bad, nil); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	svc := NewContactService(newTestDB(t))

	err := svc.UpdateStatus(999, "contacted")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}
