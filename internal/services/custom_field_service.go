package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
)

// CustomFieldService manages the extra labeled inputs shown on the
// issue-challan form. Add/Delete are total functions over the collection;
// the caller rejects blank or duplicate names before invoking.
type CustomFieldService interface {
	ListCustomFields(ctx context.Context, filter string) ([]models.CustomChallanField, error)
	AddCustomField(ctx context.Context, name string) error
	DeleteCustomField(ctx context.Context, name string) error
}

type customFieldService struct {
	db *gorm.DB
}

// NewCustomFieldService injects the *gorm.DB dependency and returns a
// CustomFieldService instance ready for use.
func NewCustomFieldService(db *gorm.DB) CustomFieldService {
	return &customFieldService{db: db}
}

func (s *customFieldService) ListCustomFields(ctx context.Context, filter string) ([]models.CustomChallanField, error) {
	q := s.db.WithContext(ctx)
	if filter != "" {
		q = q.Where("lower(name) LIKE ?", "%"+strings.ToLower(filter)+"%")
	}

	var fields []models.CustomChallanField
	if err := q.Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (s *customFieldService) AddCustomField(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Create(&models.CustomChallanField{Name: name}).Error
}

func (s *customFieldService) DeleteCustomField(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Delete(&models.CustomChallanField{}, "name = ?", name).Error
}
