package settings

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/ava-vibe/ava/log"
	"github.com/sirupsen/logrus"
)

// Options configures how a Store is opened.
type Options struct {
	Storage Storage
	// Detector supplies the ambient theme when none is stored. Nil means no signal.
	Detector ThemeDetector
	// Fallback is used when neither a stored nor a detected theme exists. Empty means Dark.
	Fallback Theme
}

// Store is the in-memory authority for customization and theme. Every mutation
// is written through to storage; a failed write is logged and returned, and the
// in-memory value stays in effect for the session.
type Store struct {
	mu            sync.RWMutex
	storage       Storage
	customization Customization
	theme         Theme
}

// Open reads both records once. Missing, malformed or out-of-range records fall back to defaults.
func Open(options *Options) *Store {
	s := &Store{storage: options.Storage}
	s.customization = loadCustomization(options.Storage)
	s.theme = loadTheme(options)
	return s
}

func loadCustomization(storage Storage) Customization {
	raw, ok, err := storage.Get(CustomizationRecord)
	if err != nil {
		log.Warnf("failed to load customization settings: %v", err)
		return DefaultCustomization()
	}
	if !ok {
		return DefaultCustomization()
	}

	var c Customization
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		log.Warnf("ignoring malformed customization settings: %v", err)
		return DefaultCustomization()
	}
	if err := c.Validate(); err != nil {
		log.Warnf("ignoring invalid customization settings: %v", err)
		return DefaultCustomization()
	}
	return c
}

func loadTheme(options *Options) Theme {
	raw, ok, err := options.Storage.Get(ThemeRecord)
	if err != nil {
		log.Warnf("failed to load theme: %v", err)
	}
	if ok {
		if theme, err := ParseTheme(strings.TrimSpace(raw)); err == nil {
			return theme
		}
		log.Warnf("ignoring invalid stored theme %q", raw)
	}

	if options.Detector != nil {
		if theme, ok := options.Detector().Get(); ok {
			return theme
		}
	}

	if theme, err := ParseTheme(string(options.Fallback)); err == nil {
		return theme
	}
	return Dark
}

// Customization returns the current speed and complexity.
func (s *Store) Customization() Customization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customization
}

// Theme returns the current theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetCustomization replaces both values. Invalid values are rejected without touching state.
func (s *Store) SetCustomization(c Customization) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid customization: %w", err)
	}

	s.mu.Lock()
	s.customization = c
	s.mu.Unlock()

	return s.persistCustomization(c)
}

// SetSpeed changes the speed only.
func (s *Store) SetSpeed(speed Speed) error {
	c := s.Customization()
	c.Speed = speed
	return s.SetCustomization(c)
}

// SetComplexity changes the complexity only.
func (s *Store) SetComplexity(complexity Complexity) error {
	c := s.Customization()
	c.Complexity = complexity
	return s.SetCustomization(c)
}

// CycleSpeed advances slow -> normal -> fast -> slow.
func (s *Store) CycleSpeed() (Speed, error) {
	speed := next(Speeds(), s.Customization().Speed)
	return speed, s.SetSpeed(speed)
}

// CycleComplexity advances low -> medium -> high -> low.
func (s *Store) CycleComplexity() (Complexity, error) {
	complexity := next(Complexities(), s.Customization().Complexity)
	return complexity, s.SetComplexity(complexity)
}

// SetTheme changes the theme.
func (s *Store) SetTheme(theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}

	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()

	if err := s.storage.Set(ThemeRecord, string(theme)); err != nil {
		log.WithFields(logrus.Fields{"record": ThemeRecord}).Warnf("failed to save theme: %v", err)
		return err
	}
	return nil
}

// ToggleTheme flips between light and dark.
func (s *Store) ToggleTheme() (Theme, error) {
	theme := next(Themes(), s.Theme())
	return theme, s.SetTheme(theme)
}

// Reset deletes both records and restores the defaults in memory.
// The theme falls back to dark rather than re-probing the terminal.
func (s *Store) Reset() error {
	s.mu.Lock()
	s.customization = DefaultCustomization()
	s.theme = Dark
	s.mu.Unlock()

	if err := s.storage.Delete(CustomizationRecord); err != nil {
		return err
	}
	return s.storage.Delete(ThemeRecord)
}

func (s *Store) persistCustomization(c Customization) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := s.storage.Set(CustomizationRecord, string(data)); err != nil {
		log.WithFields(logrus.Fields{"record": CustomizationRecord}).Warnf("failed to save customization settings: %v", err)
		return err
	}
	return nil
}
