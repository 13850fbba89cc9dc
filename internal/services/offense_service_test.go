package services

import (
	"context"
	"testing"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
)

// TestListOffenses_Filter verifies the admin panel filter: name substring
// (case-insensitive) or fine-as-string.
func TestListOffenses_Filter(t *testing.T) {
	db := setupTestDB(t)
	seedOffenses(t, db)
	svc := NewOffenseService(db)

	byName, err := svc.ListOffenses(context.Background(), "HELMET")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byName) != 1 || byName[0].ID != "2" {
		t.Errorf("expected the helmet offense, got: %v", byName)
	}

	byFine, err := svc.ListOffenses(context.Background(), "2000")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byFine) != 1 || byFine[0].ID != "5" {
		t.Errorf("expected the overspeeding offense, got: %v", byFine)
	}

	all, err := svc.ListOffenses(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 offenses, got: %d", len(all))
	}
}

// TestGetOffenses_Order verifies selection order is preserved and unknown
// ids are skipped.
func TestGetOffenses_Order(t *testing.T) {
	db := setupTestDB(t)
	seedOffenses(t, db)
	svc := NewOffenseService(db)

	got, err := svc.GetOffenses(context.Background(), []string{"5", "nope", "1"})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "5" || got[1].ID != "1" {
		t.Errorf("expected [5 1], got: %v", got)
	}
}

// TestOffenseCRUD exercises add, update and delete.
func TestOffenseCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOffenseService(db)

	o := &models.Offense{ID: "O1", Name: "Wrong-side driving", Fine: 1500}
	if err := svc.AddOffense(context.Background(), o); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	err := svc.UpdateOffense(context.Background(), "O1", map[string]interface{}{"fine": 2500})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	offenses, err := svc.ListOffenses(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(offenses) != 1 || offenses[0].Fine != 2500 || offenses[0].Name != "Wrong-side driving" {
		t.Errorf("unexpected offense after update: %v", offenses)
	}

	if err := svc.DeleteOffense(context.Background(), "O1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	offenses, err = svc.ListOffenses(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(offenses) != 0 {
		t.Errorf("expected empty catalog, got: %v", offenses)
	}
}
