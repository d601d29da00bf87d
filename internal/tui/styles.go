// Package tui provides the interactive package selection prompts and the
// styled status output of llmdocs.
package tui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Theme colors
	primaryColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	successColor = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#FE5F86", Dark: "#FE5F86"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	warnColor    = lipgloss.AdaptiveColor{Light: "#FF9500", Dark: "#FFAA33"}
)

// styles holds the status line styles bound to one renderer
type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	warn    lipgloss.Style
	name    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(primaryColor),
		muted:   r.NewStyle().Foreground(mutedColor),
		success: r.NewStyle().Foreground(successColor),
		err:     r.NewStyle().Foreground(errorColor),
		warn:    r.NewStyle().Foreground(warnColor),
		name:    r.NewStyle().Bold(true),
	}
}

// Themes lists the accepted prompt theme names
var Themes = []string{"charm", "dracula", "catppuccin", "base16", "base"}

// GetTheme returns the huh theme with the given name, falling back to charm
func GetTheme(name string) *huh.Theme {
	switch strings.ToLower(name) {
	case "dracula":
		return huh.ThemeDracula()
	case "catppuccin":
		return huh.ThemeCatppuccin()
	case "base16":
		return huh.ThemeBase16()
	case "base":
		return GetAccessibleTheme()
	default:
		return huh.ThemeCharm()
	}
}

// GetAccessibleTheme returns an accessible theme for screen readers
func GetAccessibleTheme() *huh.Theme {
	return huh.ThemeBase()
}
