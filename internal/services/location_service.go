package services

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrNoPosition is returned before a device has reported anything.
	ErrNoPosition = errors.New("no position reported")
	// ErrPositionStale is returned when the last report is too old to
	// stamp onto a challan.
	ErrPositionStale = errors.New("last reported position is stale")
)

// Position is an officer device's last reported coordinates.
type Position struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ReportedAt time.Time `json:"reportedAt"`
}

// LocationService tracks the latest position report per officer. Devices
// post updates as they move; challan issuance reads the freshest fix.
// State is held in process memory only.
type LocationService interface {
	Report(userID string, lat, lon float64)
	// Current returns the last report, or an error when none exists or
	// the report has aged past the freshness horizon.
	Current(userID string) (*Position, error)
	// Clear drops a device's reports, the teardown counterpart of a
	// position watch.
	Clear(userID string)
}

type locationService struct {
	maxAge time.Duration

	mu        sync.RWMutex
	positions map[string]Position
}

// NewLocationService returns a tracker that treats reports older than
// maxAge as stale.
func NewLocationService(maxAge time.Duration) LocationService {
	return &locationService{
		maxAge:    maxAge,
		positions: make(map[string]Position),
	}
}

func (s *locationService) Report(userID string, lat, lon float64) {
	s.mu.Lock()
	s.positions[userID] = Position{Latitude: lat, Longitude: lon, ReportedAt: time.Now()}
	s.mu.Unlock()
}

func (s *locationService) Current(userID string) (*Position, error) {
	s.mu.RLock()
	pos, ok := s.positions[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNoPosition
	}
	if time.Since(pos.ReportedAt) > s.maxAge {
		return nil, ErrPositionStale
	}
	return &pos, nil
}

func (s *locationService) Clear(userID string) {
	s.mu.Lock()
	delete(s.positions, userID)
	s.mu.Unlock()
}
