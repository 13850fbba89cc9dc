package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/services"
)

func setupCustomFieldController(t *testing.T) (*CustomFieldController, services.CustomFieldService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open test DB: %v", err)
	}
	if err := db.AutoMigrate(&models.CustomChallanField{}); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	svc := services.NewCustomFieldService(db)
	return NewCustomFieldController(svc), svc
}

func postCustomField(t *testing.T, ctrl *CustomFieldController, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/custom-fields", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := ctrl.AddCustomField(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

// TestAddCustomField_Duplicate verifies that an existing name is rejected
// without duplicating the collection entry.
func TestAddCustomField_Duplicate(t *testing.T) {
	ctrl, svc := setupCustomFieldController(t)

	if rec := postCustomField(t, ctrl, `{"name":"Driver License Number"}`); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got: %d", rec.Code)
	}
	if rec := postCustomField(t, ctrl, `{"name":"Driver License Number"}`); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for the duplicate, got: %d", rec.Code)
	}

	fields, err := svc.ListCustomFields(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(fields) != 1 {
		t.Errorf("expected 1 field after the duplicate attempt, got: %d", len(fields))
	}
}

// TestAddCustomField_Blank verifies the blank-name guard.
func TestAddCustomField_Blank(t *testing.T) {
	ctrl, svc := setupCustomFieldController(t)

	if rec := postCustomField(t, ctrl, `{"name":"   "}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a blank name, got: %d", rec.Code)
	}

	fields, err := svc.ListCustomFields(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(fields) != 0 {
		t.Errorf("expected no fields, got: %d", len(fields))
	}
}
