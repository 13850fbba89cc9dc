package services

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
)

// OffenseService defines business operations related to the offense
// catalog. Callers pre-validate (non-empty name, positive fine) before
// invoking.
type OffenseService interface {
	// ListOffenses returns the catalog, optionally narrowed by a
	// case-insensitive substring filter over the name and the fine
	// rendered as a string.
	ListOffenses(ctx context.Context, filter string) ([]models.Offense, error)
	// GetOffenses resolves catalog entries for the given ids, preserving
	// the order of ids and skipping unknown ones.
	GetOffenses(ctx context.Context, ids []string) ([]models.Offense, error)
	AddOffense(ctx context.Context, o *models.Offense) error
	UpdateOffense(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteOffense(ctx context.Context, id string) error
}

type offenseService struct {
	db *gorm.DB
}

// NewOffenseService injects the *gorm.DB dependency and returns an
// OffenseService instance ready for use.
func NewOffenseService(db *gorm.DB) OffenseService {
	return &offenseService{db: db}
}

func (s *offenseService) ListOffenses(ctx context.Context, filter string) ([]models.Offense, error) {
	var offenses []models.Offense
	if err := s.db.WithContext(ctx).Find(&offenses).Error; err != nil {
		return nil, err
	}
	if filter == "" {
		return offenses, nil
	}

	// Matches the admin panel filter: name substring or fine-as-string.
	needle := strings.ToLower(filter)
	matched := make([]models.Offense, 0, len(offenses))
	for _, o := range offenses {
		if strings.Contains(strings.ToLower(o.Name), needle) ||
			strings.Contains(strconv.Itoa(o.Fine), filter) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (s *offenseService) GetOffenses(ctx context.Context, ids []string) ([]models.Offense, error) {
	var offenses []models.Offense
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&offenses).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Offense, len(offenses))
	for _, o := range offenses {
		byID[o.ID] = o
	}

	ordered := make([]models.Offense, 0, len(ids))
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			ordered = append(ordered, o)
		}
	}
	return ordered, nil
}

func (s *offenseService) AddOffense(ctx context.Context, o *models.Offense) error {
	return s.db.WithContext(ctx).Create(o).Error
}

func (s *offenseService) UpdateOffense(ctx context.Context, id string, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&models.Offense{}).Where("id = ?", id).Updates(updates).Error
}

func (s *offenseService) DeleteOffense(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Offense{}, "id = ?", id).Error
}
