// Package prefs stores the single string-valued theme preference kept
// separately from the expense document.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const themeFile = "theme.pref"

// DefaultTheme is used when no preference has been saved yet.
const DefaultTheme = "System"

// Themes lists the accepted theme names.
var Themes = []string{"System", "Light", "Dark"}

// LoadTheme returns the saved theme for a data directory, or DefaultTheme.
func LoadTheme(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, themeFile))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading theme preference: %w", err)
	}
	theme := strings.TrimSpace(string(data))
	if theme == "" {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SaveTheme persists the theme preference for a data directory.
func SaveTheme(dir, theme string) error {
	if !validTheme(theme) {
		return fmt.Errorf("unknown theme %q (want one of %s)", theme, strings.Join(Themes, ", "))
	}
	if err := os.WriteFile(filepath.Join(dir, themeFile), []byte(theme+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing theme preference: %w", err)
	}
	return nil
}

func validTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}
