package theme

import (
	"errors"
	"fmt"
	"sort"
)

var ErrThemeNotFound = errors.New("theme not found")

type Theme struct {
	Name string

	// semantic
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// priority
	PriorityHigh   string
	PriorityNormal string
	PriorityLow    string

	// completion
	Completed string
	Open      string

	// UI element
	BorderColor  string
	SelectedBg   string
	SelectedFg   string
	HeaderBg     string
	HeaderFg     string
	Separator    string
	HelpText     string
	SubtitleText string
}

var registry = map[string]func() *Theme{
	"default": DefaultTheme,
	"dark":    DarkTheme,
	"dracula": DraculaTheme,
	"nord":    NordTheme,
}

// GetTheme returns the named theme.
func GetTheme(name string) (*Theme, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return build(), nil
}

// Resolve returns the named theme, or the default theme when name is empty
// or unknown.
func Resolve(name string) *Theme {
	if t, err := GetTheme(name); err == nil {
		return t
	}
	return DefaultTheme()
}

// ListThemes returns theme names with default first.
func ListThemes() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		if name != "default" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{"default"}, names...)
}

func ThemeExists(name string) bool {
	_, ok := registry[name]
	return ok
}
