package pubhub

import (
	"sync"

	"github.com/spf13/viper"
)

// ViewMode is the publication listing layout.
type ViewMode string

const (
	ViewModeSingle ViewMode = "single"
	ViewModeMulti  ViewMode = "multi"
)

// Theme is the configured UI theme. ThemeAuto defers to the host's
// color-scheme preference at apply time.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// ColorSchemeResolver reports the host's preferred color scheme
// (ThemeLight or ThemeDark). It is consulted every time an auto theme
// is applied, never cached.
type ColorSchemeResolver func() Theme

const (
	prefKeyViewMode = "view_mode"
	prefKeyTheme    = "theme"
)

// ViewStore holds the persisted listing layout preference. Writes go
// straight through to durable storage; there is no batching and no
// server interaction.
type ViewStore struct {
	mu   sync.RWMutex
	v    *viper.Viper
	mode ViewMode
}

// NewViewStore wraps a viper instance configured with a settings file.
// A nil instance degrades to process-local preferences.
func NewViewStore(v *viper.Viper) *ViewStore {
	if v == nil {
		v = viper.New()
	}
	return &ViewStore{v: v, mode: ViewModeMulti}
}

// InitializeView loads the persisted mode. Absent or unrecognized
// values resolve to the multi-item default, which is persisted right
// away so the next read is clean.
func (s *ViewStore) InitializeView() ViewMode {
	saved := ViewMode(s.v.GetString(prefKeyViewMode))
	if saved == ViewModeSingle || saved == ViewModeMulti {
		s.ToggleView(saved)
	} else {
		s.ToggleView(ViewModeMulti)
	}
	return s.Mode()
}

// ToggleView switches the layout and writes it through immediately.
func (s *ViewStore) ToggleView(mode ViewMode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	s.v.Set(prefKeyViewMode, string(mode))
	s.persist()
}

func (s *ViewStore) Mode() ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *ViewStore) persist() {
	if s.v.ConfigFileUsed() == "" {
		return
	}
	// Preference writes are fire-and-forget, like localStorage in the
	// web client.
	_ = s.v.WriteConfig()
}

// ThemeStore follows the same persisted-preference pattern as
// ViewStore, with three recognized values instead of two.
type ThemeStore struct {
	mu      sync.RWMutex
	v       *viper.Viper
	theme   Theme
	resolve ColorSchemeResolver
}

// NewThemeStore wraps a viper instance and a host color-scheme
// resolver. A nil resolver pins auto to light.
func NewThemeStore(v *viper.Viper, resolve ColorSchemeResolver) *ThemeStore {
	if v == nil {
		v = viper.New()
	}
	if resolve == nil {
		resolve = func() Theme { return ThemeLight }
	}
	return &ThemeStore{v: v, theme: ThemeLight, resolve: resolve}
}

// InitializeTheme loads the persisted theme, defaulting to light when
// absent or unrecognized, then applies it.
func (s *ThemeStore) InitializeTheme() Theme {
	saved := Theme(s.v.GetString(prefKeyTheme))
	if saved != ThemeLight && saved != ThemeDark && saved != ThemeAuto {
		saved = ThemeLight
	}

	s.mu.Lock()
	s.theme = saved
	s.mu.Unlock()

	return s.ApplyTheme()
}

// ApplyTheme resolves the effective theme and persists the configured
// (not the resolved) value. Auto is resolved against the host
// preference at apply time, so the same stored value can yield a
// different effective theme on a later call.
func (s *ThemeStore) ApplyTheme() Theme {
	s.mu.RLock()
	theme := s.theme
	s.mu.RUnlock()

	effective := theme
	if theme == ThemeAuto {
		effective = s.resolve()
	}

	s.v.Set(prefKeyTheme, string(theme))
	s.persist()

	return effective
}

// ToggleTheme switches to an explicit light or dark theme and applies
// it.
func (s *ThemeStore) ToggleTheme(theme Theme) Theme {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()

	return s.ApplyTheme()
}

func (s *ThemeStore) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *ThemeStore) persist() {
	if s.v.ConfigFileUsed() == "" {
		return
	}
	_ = s.v.WriteConfig()
}
