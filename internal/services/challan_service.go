package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
)

// MaxPhotoBytes caps the decoded size of an inline photo at 2 MB.
const MaxPhotoBytes = 2 * 1024 * 1024

// highRiskFine marks a challan as high risk on the dashboard.
const highRiskFine = 5000

var (
	ErrMissingVehicleNumber = errors.New("vehicle number is required")
	ErrNoOffenses           = errors.New("at least one offense is required")
	ErrPhotoTooLarge        = errors.New("photo evidence exceeds 2 MB")
)

// ChallanService defines business operations related to issued challans.
// Challans are append-only: there is no update or delete.
type ChallanService interface {
	// ListChallans returns challans newest first. An empty issuedBy
	// returns every record; otherwise only that user's.
	ListChallans(ctx context.Context, issuedBy string) ([]models.Challan, error)
	// Quote recomputes the running fine total for the current offense
	// selection, in selection order.
	Quote(ctx context.Context, offenseIDs []string) (*models.Quote, error)
	// IssueChallan validates the form submission, snapshots the selected
	// offenses, stamps the issuance time and the officer's position when
	// one is known, and appends the record.
	IssueChallan(ctx context.Context, req *models.ChallanRequest, issuedBy string, lat, lon *float64) (*models.Challan, error)
	// Dashboard aggregates activity for the given user. Admins see the
	// whole department, employees only their own challans.
	Dashboard(ctx context.Context, user *models.User) (*models.DashboardStats, error)
}

type challanService struct {
	db       *gorm.DB
	offenses OffenseService
}

// NewChallanService injects the dependencies and returns a ChallanService
// instance ready for use.
func NewChallanService(db *gorm.DB, offenses OffenseService) ChallanService {
	return &challanService{db: db, offenses: offenses}
}

func (s *challanService) ListChallans(ctx context.Context, issuedBy string) ([]models.Challan, error) {
	q := s.db.WithContext(ctx).
		Preload("Offenses", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("date DESC")
	if issuedBy != "" {
		q = q.Where("issued_by = ?", issuedBy)
	}

	var challans []models.Challan
	if err := q.Find(&challans).Error; err != nil {
		return nil, err
	}
	return challans, nil
}

func (s *challanService) Quote(ctx context.Context, offenseIDs []string) (*models.Quote, error) {
	selected, err := s.offenses.GetOffenses(ctx, offenseIDs)
	if err != nil {
		return nil, err
	}

	quote := &models.Quote{Offenses: make([]models.ChallanOffense, 0, len(selected))}
	for i, o := range selected {
		quote.Offenses = append(quote.Offenses, models.ChallanOffense{
			OffenseID: o.ID,
			Name:      o.Name,
			Fine:      o.Fine,
			Position:  i,
		})
		quote.TotalFine += o.Fine
	}
	return quote, nil
}

func (s *challanService) IssueChallan(ctx context.Context, req *models.ChallanRequest, issuedBy string, lat, lon *float64) (*models.Challan, error) {
	vehicleNumber := strings.ToUpper(strings.TrimSpace(req.VehicleNumber))
	if vehicleNumber == "" {
		return nil, ErrMissingVehicleNumber
	}
	if size, err := decodedPhotoSize(req.PhotoEvidence); err != nil || size > MaxPhotoBytes {
		return nil, ErrPhotoTooLarge
	}

	quote, err := s.Quote(ctx, req.OffenseIDs)
	if err != nil {
		return nil, err
	}
	if len(quote.Offenses) == 0 {
		return nil, ErrNoOffenses
	}

	challan := &models.Challan{
		ID:            fmt.Sprintf("C%d", time.Now().UnixNano()),
		VehicleNumber: vehicleNumber,
		DriverName:    strings.TrimSpace(req.DriverName),
		DriverLicense: driverLicenseFor(req.CustomFields),
		Offenses:      quote.Offenses,
		TotalFine:     quote.TotalFine,
		Latitude:      lat,
		Longitude:     lon,
		Date:          time.Now(),
		PhotoEvidence: req.PhotoEvidence,
		IssuedBy:      issuedBy,
		CustomFields:  req.CustomFields,
	}

	if err := s.db.WithContext(ctx).Create(challan).Error; err != nil {
		return nil, err
	}
	return challan, nil
}

func (s *challanService) Dashboard(ctx context.Context, user *models.User) (*models.DashboardStats, error) {
	issuedBy := user.ID
	if user.Role == models.RoleAdmin {
		issuedBy = ""
	}
	challans, err := s.ListChallans(ctx, issuedBy)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	stats := &models.DashboardStats{ChallanCount: len(challans)}
	for _, c := range challans {
		stats.TotalFine += c.TotalFine
		if c.TotalFine >= highRiskFine {
			stats.HighRiskCount++
		}
	}

	if user.Role == models.RoleAdmin {
		count := 0
		for _, u := range users {
			if u.Role == models.RoleEmployee {
				count++
			}
		}
		stats.EmployeeCount = &count
	}

	recent := challans
	if len(recent) > 5 {
		recent = recent[:5]
	}
	for _, c := range recent {
		name, ok := names[c.IssuedBy]
		if !ok {
			name = "Unknown"
		}
		stats.Recent = append(stats.Recent, models.ChallanSummary{
			ID:            c.ID,
			VehicleNumber: c.VehicleNumber,
			TotalFine:     c.TotalFine,
			Date:          c.Date.Format(time.RFC3339),
			IssuedByName:  name,
		})
	}
	return stats, nil
}

// driverLicenseFor takes the license from the form's custom fields when
// present, otherwise synthesizes a placeholder of random digits.
func driverLicenseFor(customFields map[string]string) string {
	if license := strings.TrimSpace(customFields["Driver License Number"]); license != "" {
		return license
	}
	digits := make([]byte, 10)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return "DL" + string(digits)
}

// decodedPhotoSize reports the decoded byte size of an inline base64
// photo, tolerating a data: URL prefix. An unparseable payload counts as
// oversized; the caller treats both the same way.
func decodedPhotoSize(photo string) (int, error) {
	if photo == "" {
		return 0, nil
	}
	payload := photo
	if strings.HasPrefix(payload, "data:") {
		i := strings.Index(payload, ",")
		if i < 0 {
			return 0, errors.New("malformed data URL")
		}
		payload = payload[i+1:]
	}
	if n := len(payload) % 4; n != 0 {
		return 0, errors.New("malformed base64 payload")
	}
	return base64.StdEncoding.DecodedLen(len(payload)) - strings.Count(payload, "="), nil
}
