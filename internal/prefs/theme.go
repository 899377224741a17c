package prefs

import (
	"context"
	"fmt"
	"strings"
)

// ThemeKey is the storage key for the theme flag.
const ThemeKey = "theme"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark" (case-insensitive).
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon is the toggle button label: the moon offers dark mode, the sun light.
func (t Theme) Icon() string {
	if t == Dark {
		return "☀️"
	}
	return "🌙"
}

func (t Theme) String() string { return string(t) }

// LoadTheme reads the stored theme. Missing or unrecognised values yield def.
func LoadTheme(ctx context.Context, kv KV, def Theme) (Theme, error) {
	v, ok, err := kv.Get(ctx, ThemeKey)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	t, ok := ParseTheme(v)
	if !ok {
		return def, nil
	}
	return t, nil
}

// SaveTheme persists t.
func SaveTheme(ctx context.Context, kv KV, t Theme) error {
	if _, ok := ParseTheme(string(t)); !ok {
		return fmt.Errorf("prefs: invalid theme %q", t)
	}
	return kv.Set(ctx, ThemeKey, string(t))
}

// ToggleTheme flips the stored theme and persists the new value.
func ToggleTheme(ctx context.Context, kv KV, def Theme) (Theme, error) {
	cur, err := LoadTheme(ctx, kv, def)
	if err != nil {
		return cur, err
	}
	next := cur.Toggle()
	if err := SaveTheme(ctx, kv, next); err != nil {
		return cur, err
	}
	return next, nil
}
