package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
)

// ErrLoginFailed is deliberately generic: callers must not learn whether
// the user was unknown or the password wrong.
var ErrLoginFailed = errors.New("login failed")

// ErrNoSession is returned when a token does not resolve to a live session.
var ErrNoSession = errors.New("no session for token")

// AuthService validates credentials against the user collection and
// tracks logged-in sessions. Sessions are held in process memory and are
// as transient as the rest of the application state.
type AuthService interface {
	// Login matches the name case-insensitively and the role exactly. An
	// admin with no stored password logs in unconditionally; everyone
	// else needs an exact plaintext password match. Returns an opaque
	// bearer token on success.
	Login(ctx context.Context, username string, role models.Role, password string) (string, *models.User, error)
	// Logout revokes the token. Revoking an unknown token is a no-op.
	Logout(token string)
	// UserForToken resolves a bearer token to its current user record.
	UserForToken(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	db *gorm.DB

	mu       sync.RWMutex
	sessions map[string]string // token -> user id
}

// NewAuthService injects the *gorm.DB dependency and returns an
// AuthService instance ready for use.
func NewAuthService(db *gorm.DB) AuthService {
	return &authService{
		db:       db,
		sessions: make(map[string]string),
	}
}

func (s *authService) Login(ctx context.Context, username string, role models.Role, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("lower(name) = ? AND role = ?", strings.ToLower(username), role).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrLoginFailed
		}
		return "", nil, err
	}

	// Admins may log in without a password when none is stored.
	if !(role == models.RoleAdmin && user.Password == "") && user.Password != password {
		return "", nil, ErrLoginFailed
	}

	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = user.ID
	s.mu.Unlock()

	return token, &user, nil
}

func (s *authService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *authService) UserForToken(ctx context.Context, token string) (*models.User, error) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The account was deleted out from under the session.
			s.Logout(token)
			return nil, ErrNoSession
		}
		return nil, err
	}
	return &user, nil
}
