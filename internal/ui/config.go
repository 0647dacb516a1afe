package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/selection"
	"github.com/javiermolinar/calpick/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.
Press enter to keep a value, or "-" to clear an optional one.

Example:
  calpick config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(config.DefaultConfigPath(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(path string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", path)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", path)
	}

	if err := printConfig(out, cfg); err != nil {
		return err
	}

	p := &prompter{in: bufio.NewReader(in), out: out}
	if !p.yesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	p.editCalendar(&cfg.Calendar)
	p.editLabels(&cfg.Labels)
	cfg.Storage.DBPath = p.value("Database path", cfg.Storage.DBPath)
	p.editUI(&cfg.UI)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

// printConfig shows the config the way it is written to disk.
func printConfig(out io.Writer, cfg *config.Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, strings.Repeat("─", 22))
	_, err = out.Write(data)
	return err
}

// prompter reads answers line by line. At end of input every prompt keeps
// its current value.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func (p *prompter) editCalendar(c *config.CalendarConfig) {
	c.WeekStart = p.integer("Week start (0=Sunday .. 6=Saturday)", c.WeekStart)
	c.Mode = p.mode(c.Mode)
	c.BlockLength = p.integer("Block length in days (multi_range)", c.BlockLength)
	c.SelectStartDate = p.boolean("Range picks start with the start date", c.SelectStartDate)
	c.DisabledBefore = p.value("Disable days before (YYYY-MM-DD)", c.DisabledBefore)
	c.DisabledAfter = p.value("Disable days after (YYYY-MM-DD)", c.DisabledAfter)
	c.ScrollEnabled = p.boolean("Keep a five-month swipe window", c.ScrollEnabled)
}

func (p *prompter) editLabels(l *config.LabelsConfig) {
	l.MonthNames = p.list("Month names (comma-separated, January first)", l.MonthNames)
	l.DayHeadings = p.list("Day headings (comma-separated, Sunday first)", l.DayHeadings)
	l.TitleFormat = p.value("Title format (Go layout)", l.TitleFormat)
}

func (p *prompter) editUI(u *config.UIConfig) {
	u.ShowEventIndicators = p.boolean("Show event indicators", u.ShowEventIndicators)
	u.FadedRange = p.boolean("Fade days inside a range", u.FadedRange)
	u.Theme = p.theme(u.Theme)
}

// line prints label with the current value and returns the trimmed answer,
// or "" when the user just pressed enter.
func (p *prompter) line(label, current string) string {
	if current == "" {
		fmt.Fprintf(p.out, "  %s: ", label)
	} else {
		fmt.Fprintf(p.out, "  %s [%s]: ", label, current)
	}
	if p.eof {
		fmt.Fprintln(p.out)
		return ""
	}
	s, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
	}
	return strings.TrimSpace(s)
}

func (p *prompter) yesNo(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	s, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}

func (p *prompter) value(label, current string) string {
	switch s := p.line(label, current); s {
	case "":
		return current
	case "-":
		return ""
	default:
		return s
	}
}

func (p *prompter) integer(label string, current int) int {
	for {
		s := p.line(label, strconv.Itoa(current))
		if s == "" {
			return current
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		fmt.Fprintf(p.out, "  Invalid number %q\n", s)
	}
}

func (p *prompter) boolean(label string, current bool) bool {
	for {
		s := strings.ToLower(p.line(label+" (y/n)", strconv.FormatBool(current)))
		switch s {
		case "":
			return current
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		fmt.Fprintf(p.out, "  Invalid value %q\n", s)
	}
}

func (p *prompter) mode(current string) string {
	options := strings.Join([]string{
		selection.Single.String(),
		selection.Range.String(),
		selection.MultiRange.String(),
	}, ", ")
	label := fmt.Sprintf("Selection mode (%s)", options)
	for {
		s := strings.ToLower(p.line(label, current))
		if s == "" {
			return current
		}
		if m, err := selection.ParseMode(s); err == nil {
			return m.String()
		}
		fmt.Fprintf(p.out, "  Invalid mode %q. Available: %s\n", s, options)
	}
}

func (p *prompter) list(label string, current []string) []string {
	s := p.line(label, strings.Join(current, ", "))
	if s == "" {
		return current
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (p *prompter) theme(current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		s := strings.ToLower(p.line(label, current))
		if s == "" {
			return current
		}
		if theme.IsAvailable(s) {
			return s
		}
		fmt.Fprintf(p.out, "  Invalid theme %q. Available: %s\n", s, options)
	}
}
