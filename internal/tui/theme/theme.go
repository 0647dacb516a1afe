// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"reflect"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// DefaultName is the theme used when none is configured or the configured
// one does not exist.
const DefaultName = "mocha"

// ErrInvalidColor is returned when a theme field is not a hex color.
var ErrInvalidColor = errors.New("invalid theme color")

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme is one TOML theme file. Only bg, fg and accent are required; the
// other colors fall back to them.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"` // goto prompt
	BgSelection string `toml:"bg_selection"` // day cursor
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // headings, fillers, help
	Accent      string `toml:"accent"`   // title, page dots
	Today       string `toml:"today"`
	Range       string `toml:"range"` // picked day, range and block endpoints
	Event       string `toml:"event"`
	Weekend     string `toml:"weekend"`
	Disabled    string `toml:"disabled"`
	Warning     string `toml:"warning"` // errors, rejected picks
}

// Color converts a hex string into a lipgloss color.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load reads the embedded theme called name (case insensitive). Unknown
// names load DefaultName instead.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile(path.Join("embedded", name+".toml"))
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}
	t.applyDefaults()

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	return &t, nil
}

// Validate checks that every color field holds a hex color.
func (t *Theme) Validate() error {
	v := reflect.ValueOf(*t)
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Name == "Name" {
			continue
		}
		hex := v.Field(i).String()
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: %s = %q", ErrInvalidColor, field.Tag.Get("toml"), hex)
		}
	}
	return nil
}

func (t *Theme) applyDefaults() {
	fallback := func(dst *string, from ...string) {
		for _, v := range from {
			if *dst != "" {
				return
			}
			*dst = v
		}
	}
	fallback(&t.BgHighlight, t.Bg)
	fallback(&t.BgSelection, t.BgHighlight, t.Bg)
	fallback(&t.FgMuted, t.Fg)
	fallback(&t.Disabled, t.FgMuted)
	fallback(&t.Weekend, t.Fg)
	for _, dst := range []*string{&t.Today, &t.Range, &t.Event, &t.Warning} {
		fallback(dst, t.Accent)
	}
}

// Available lists the embedded theme names, dark themes first.
func Available() []string {
	entries, err := fs.ReadDir(embeddedThemes, "embedded")
	if err != nil {
		return []string{DefaultName}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".toml"); ok {
			names = append(names, name)
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		return themeOrder(names[i]) < themeOrder(names[j])
	})
	return names
}

// themeOrder sorts the Catppuccin flavors from darkest to lightest and puts
// anything else after them alphabetically.
func themeOrder(name string) string {
	switch name {
	case "mocha":
		return "0"
	case "macchiato":
		return "1"
	case "frappe":
		return "2"
	case "latte":
		return "3"
	}
	return "9" + name
}

// IsAvailable reports whether name is an embedded theme.
func IsAvailable(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range Available() {
		if n == name {
			return true
		}
	}
	return false
}
