package services

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// ErrInvalidTheme is returned for anything other than light, dark or system.
var ErrInvalidTheme = errors.New("invalid theme")

// Themes the client understands. "system" defers to the device setting.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// PreferenceService holds the theme selection, the only value this
// application keeps across restarts. The file is read once at startup and
// rewritten on every change.
type PreferenceService interface {
	Theme() string
	SetTheme(theme string) error
}

type preferenceService struct {
	path string

	mu    sync.RWMutex
	theme string
}

type prefsFile struct {
	Theme string `json:"theme"`
}

// NewPreferenceService loads the stored preference, defaulting to the
// system theme when the file is missing or unreadable.
func NewPreferenceService(path string) PreferenceService {
	s := &preferenceService{path: path, theme: ThemeSystem}

	data, err := os.ReadFile(path)
	if err == nil {
		var stored prefsFile
		if json.Unmarshal(data, &stored) == nil && validTheme(stored.Theme) {
			s.theme = stored.Theme
		}
	}
	return s
}

func (s *preferenceService) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *preferenceService) SetTheme(theme string) error {
	if !validTheme(theme) {
		return ErrInvalidTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(prefsFile{Theme: theme})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}
	s.theme = theme
	return nil
}

func validTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark || theme == ThemeSystem
}
