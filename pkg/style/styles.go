// Package style defines the visual styling for stampname's terminal output.
//
// Styles have semantic names and adaptive colors and are loaded from the
// embedded styles.yaml. Text carries styles as bracket tags:
//
//	[FilePath]a.txt[/FilePath] -> [NewPath]20240101_120000_000.txt[/NewPath]
//
// Render applies the styles; Strip drops the tags for plain output.
package style

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	Width       int    `yaml:"width,omitempty"`
	MarginLeft  int    `yaml:"marginLeft,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

var colors map[string]lipgloss.AdaptiveColor

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		initDefaultStyles()
	}
}

// initDefaultStyles keeps every name resolvable when styles.yaml is unusable.
func initDefaultStyles() {
	colors = make(map[string]lipgloss.AdaptiveColor)
	StyleRegistry = make(map[string]lipgloss.Style)

	defaultStyle := lipgloss.NewStyle()
	for _, name := range []string{
		"Header", "Label", "Value", "FilePath", "NewPath",
		"Success", "Warning", "Error", "Muted", "Count",
	} {
		StyleRegistry[name] = defaultStyle
	}
}

// LoadStyles loads style configuration from a YAML file
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return LoadStylesFromData(data)
}

// LoadStylesFromData loads style configuration from byte data
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}
	if len(config.Styles) == 0 {
		return fmt.Errorf("styles data defines no styles")
	}

	colors = make(map[string]lipgloss.AdaptiveColor)
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	StyleRegistry = make(map[string]lipgloss.Style)
	for name, def := range config.Styles {
		StyleRegistry[name] = buildStyle(def)
	}

	return nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}

	return style
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// HasStyle reports whether name is a registered style.
func HasStyle(name string) bool {
	_, ok := StyleRegistry[name]
	return ok
}
