package services

import (
	"errors"
	"testing"
	"time"
)

// TestLocation_ReportAndCurrent verifies the happy path and per-user
// isolation.
func TestLocation_ReportAndCurrent(t *testing.T) {
	svc := NewLocationService(time.Minute)

	if _, err := svc.Current("emp1"); !errors.Is(err, ErrNoPosition) {
		t.Fatalf("expected ErrNoPosition before any report, got: %v", err)
	}

	svc.Report("emp1", 19.0760, 72.8777)
	pos, err := svc.Current("emp1")
	if err != nil {
		t.Fatalf("expected a position, got: %v", err)
	}
	if pos.Latitude != 19.0760 || pos.Longitude != 72.8777 {
		t.Errorf("unexpected position: %+v", pos)
	}

	if _, err := svc.Current("emp2"); !errors.Is(err, ErrNoPosition) {
		t.Errorf("expected ErrNoPosition for another user, got: %v", err)
	}

	// Newer reports replace older ones.
	svc.Report("emp1", 23.0225, 72.5714)
	pos, err = svc.Current("emp1")
	if err != nil {
		t.Fatalf("expected a position, got: %v", err)
	}
	if pos.Latitude != 23.0225 {
		t.Errorf("expected the latest report, got: %+v", pos)
	}
}

// TestLocation_Stale verifies that old reports stop being served.
func TestLocation_Stale(t *testing.T) {
	svc := NewLocationService(10 * time.Millisecond)

	svc.Report("emp1", 19.0760, 72.8777)
	time.Sleep(30 * time.Millisecond)

	if _, err := svc.Current("emp1"); !errors.Is(err, ErrPositionStale) {
		t.Errorf("expected ErrPositionStale, got: %v", err)
	}
}

// TestLocation_Clear verifies teardown.
func TestLocation_Clear(t *testing.T) {
	svc := NewLocationService(time.Minute)

	svc.Report("emp1", 19.0760, 72.8777)
	svc.Clear("emp1")

	if _, err := svc.Current("emp1"); !errors.Is(err, ErrNoPosition) {
		t.Errorf("expected ErrNoPosition after clear, got: %v", err)
	}
}
