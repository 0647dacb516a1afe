package theme

import (
	"errors"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "mocha", in: "mocha", want: "mocha"},
		{name: "latte", in: "latte", want: "latte"},
		{name: "case and spaces", in: "  Frappe ", want: "frappe"},
		{name: "empty uses default", in: "", want: DefaultName},
		{name: "unknown uses default", in: "solarized", want: DefaultName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th, err := Load(tc.in)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tc.in, err)
			}
			if th.Name != tc.want {
				t.Errorf("Load(%q).Name = %q, want %q", tc.in, th.Name, tc.want)
			}
		})
	}
}

func TestLoad_EveryEmbeddedThemeValidates(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", name, err)
			}
			if th.Name != name {
				t.Errorf("Name = %q, want %q", th.Name, name)
			}
			if err := th.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestValidate_RejectsBadColor(t *testing.T) {
	th := &Theme{Bg: "#000000", Fg: "#ffffff", Accent: "purple"}
	th.applyDefaults()

	err := th.Validate()
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("Validate() = %v, want ErrInvalidColor", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	th := &Theme{Bg: "#000000", Fg: "#ffffff", Accent: "#ff0000", Range: "#00ff00"}
	th.applyDefaults()

	want := Theme{
		Bg:          "#000000",
		BgHighlight: "#000000",
		BgSelection: "#000000",
		Fg:          "#ffffff",
		FgMuted:     "#ffffff",
		Accent:      "#ff0000",
		Today:       "#ff0000",
		Range:       "#00ff00",
		Event:       "#ff0000",
		Weekend:     "#ffffff",
		Disabled:    "#ffffff",
		Warning:     "#ff0000",
	}
	if *th != want {
		t.Errorf("applyDefaults() =\n%+v\nwant\n%+v", *th, want)
	}
}

func TestAvailable(t *testing.T) {
	want := []string{"mocha", "macchiato", "frappe", "latte", "light"}
	if got := Available(); !reflect.DeepEqual(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "mocha", want: true},
		{in: "Macchiato", want: true},
		{in: "light", want: true},
		{in: "unknown", want: false},
		{in: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := IsAvailable(tc.in); got != tc.want {
				t.Errorf("IsAvailable(%q) = %t, want %t", tc.in, got, tc.want)
			}
		})
	}
}
