package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
)

// UserService defines business operations related to officer and
// administrator accounts. Operations do no domain validation of their own;
// callers pre-validate fields before invoking.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	// ListEmployees returns employee accounts, optionally narrowed by a
	// case-insensitive name substring filter.
	ListEmployees(ctx context.Context, filter string) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	AddUser(ctx context.Context, u *models.User) error
	// UpdateUser applies only the given columns. Updating a missing id is
	// a no-op, as is deleting one.
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteUser(ctx context.Context, id string) error
}

// userService is the concrete implementation of UserService.
type userService struct {
	db *gorm.DB
}

// NewUserService injects the *gorm.DB dependency and returns a
// UserService instance ready for use.
func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) ListEmployees(ctx context.Context, filter string) ([]models.User, error) {
	q := s.db.WithContext(ctx).Where("role = ?", models.RoleEmployee)
	if filter != "" {
		q = q.Where("lower(name) LIKE ?", "%"+strings.ToLower(filter)+"%")
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) AddUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *userService) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}
