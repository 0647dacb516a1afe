package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/classify"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
	"github.com/javiermolinar/calpick/internal/grid"
	"github.com/javiermolinar/calpick/internal/selection"
	"github.com/javiermolinar/calpick/internal/tui/view"
)

// monthOpts are the flags of the month command.
type monthOpts struct {
	month   string
	mode    string
	picks   []string
	start   string
	end     string
	months  int
	save    bool
	noColor bool
}

func (a *App) monthCmd() *cobra.Command {
	var opts monthOpts

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Print a month and apply scripted picks",
		Long: `Print the month grid with today, selections, disabled days and events marked.

Each --pick is applied in order through the same selection rules the
interactive calendar uses, and every resulting notification is printed.`,
		Example: `  calpick month
  calpick month 2024-03 --mode range --start 2024-03-10 --pick 2024-03-15
  calpick month --mode multi_range --pick 2024-02-10 --pick 2024-02-13 --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.month = args[0]
			}
			if opts.noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return a.runMonth(context.Background(), os.Stdout, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "", "Selection mode: single, range or multi_range (default from config)")
	cmd.Flags().StringArrayVar(&opts.picks, "pick", nil, "Date to pick (YYYY-MM-DD, repeatable)")
	cmd.Flags().StringVar(&opts.start, "start", "", "Initial range start (YYYY-MM-DD, range mode)")
	cmd.Flags().StringVar(&opts.end, "end", "", "Initial range end (YYYY-MM-DD, range mode)")
	cmd.Flags().IntVarP(&opts.months, "months", "n", 1, "Number of months to print")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Persist multi-range blocks after the picks")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable color output")

	return cmd
}

func (a *App) runMonth(ctx context.Context, out io.Writer, opts monthOpts) error {
	calOpts, err := a.config.CalendarOptions()
	if err != nil {
		return err
	}

	if opts.mode != "" {
		mode, err := selection.ParseMode(opts.mode)
		if err != nil {
			return err
		}
		calOpts.Mode = mode
	}
	if opts.month != "" {
		cursor, err := dateutil.ParseMonth(opts.month)
		if err != nil {
			return err
		}
		calOpts.Cursor = cursor
	}
	if opts.start != "" {
		if calOpts.RangeStart, err = dateutil.ParseDate(opts.start); err != nil {
			return fmt.Errorf("start: %w", err)
		}
	}
	if opts.end != "" {
		if calOpts.RangeEnd, err = dateutil.ParseDate(opts.end); err != nil {
			return fmt.Errorf("end: %w", err)
		}
	}
	if opts.months < 1 {
		opts.months = 1
	}

	picks := make([]dateutil.Date, 0, len(opts.picks))
	for _, p := range opts.picks {
		d, err := dateutil.ParseDate(p)
		if err != nil {
			return fmt.Errorf("pick %q: %w", p, err)
		}
		picks = append(picks, d)
	}

	if calOpts.Mode == selection.MultiRange && a.blocks != nil {
		if calOpts.BlockStarts, err = a.blocks.ListBlocks(ctx); err != nil {
			return fmt.Errorf("loading blocks: %w", err)
		}
	}

	w, err := calendar.New(calOpts, notificationHandlers(out))
	if err != nil {
		return err
	}

	first := w.Cursor()
	last := first.AddMonths(opts.months - 1).EndOfMonth()
	events, err := a.repo.ListEventsByDateRange(ctx, first, last)
	if err != nil {
		return fmt.Errorf("listing events: %w", err)
	}
	w.SetEvents(nil, event.Entries(events))

	for _, d := range picks {
		if w.IsDisabled(d) {
			_, _ = fmt.Fprintf(out, "%s %s (disabled)\n", formatMuted("skip"), d)
			continue
		}
		if res := w.Pick(d); !res.Accepted {
			_, _ = fmt.Fprintf(out, "%s %s\n", formatMuted("rejected"), d)
		}
	}
	if len(picks) > 0 {
		_, _ = fmt.Fprintln(out)
	}

	if opts.save && w.Mode() == selection.MultiRange && a.blocks != nil {
		if err := a.blocks.SaveBlocks(ctx, w.Blocks()); err != nil {
			return fmt.Errorf("saving blocks: %w", err)
		}
	}

	style := printStyle{
		Indicators: a.config.UI.ShowEventIndicators,
		FadedRange: a.config.UI.FadedRange,
	}
	blocks := make([][]string, 0, opts.months)
	for i := 0; i < opts.months; i++ {
		w.GoTo(first.AddMonths(i))
		blocks = append(blocks, renderMonth(w.Title(), w.Headings(), w.Month(), style))
	}
	w.GoTo(first)

	printSideBySide(out, blocks, termWidth())

	if style.Indicators {
		printEventList(out, events)
	}
	printSelection(out, w.State())
	return nil
}

// notificationHandlers prints each widget notification on its own line.
func notificationHandlers(out io.Writer) calendar.Handlers {
	return calendar.Handlers{
		OnDateSelect: func(d, rs, re dateutil.Date) {
			n := selection.Notification{Kind: selection.DateSelected, Date: d, RangeStart: rs, RangeEnd: re}
			_, _ = fmt.Fprintf(out, "-> %s\n", n)
		},
		OnStartDateSelect: func(d, rs dateutil.Date) {
			n := selection.Notification{Kind: selection.StartSelected, Date: d, RangeStart: rs}
			_, _ = fmt.Fprintf(out, "-> %s\n", n)
		},
		OnEndDateSelect: func(d, re dateutil.Date) {
			n := selection.Notification{Kind: selection.EndSelected, Date: d, RangeEnd: re}
			_, _ = fmt.Fprintf(out, "-> %s\n", n)
		},
		OnMultiRangeStartDateSelect: func(d dateutil.Date) {
			n := selection.Notification{Kind: selection.BlockSelected, Date: d}
			_, _ = fmt.Fprintf(out, "-> %s\n", n)
		},
	}
}

// printStyle holds the rendering toggles from the [ui] config section.
type printStyle struct {
	Indicators bool
	FadedRange bool
}

// cellWidth is the printed width of one day column, separator included.
func cellWidth(headings [grid.DaysPerWeek]grid.Heading) int {
	w := 2
	for _, h := range headings {
		if hw := runewidth.StringWidth(h.Label); hw > w {
			w = hw
		}
	}
	return w + 2
}

// renderMonth returns the lines of one month block. Every line has the same
// visible width so blocks can be laid out side by side.
func renderMonth(title string, headings [grid.DaysPerWeek]grid.Heading, m classify.Month, style printStyle) []string {
	cw := cellWidth(headings)
	width := cw * grid.DaysPerWeek

	lines := make([]string, 0, len(m.Weeks)+2)
	lines = append(lines, formatHeader(view.Center(title, width)))

	var sb strings.Builder
	for _, h := range headings {
		label := runewidth.FillLeft(runewidth.Truncate(h.Label, cw-1, ""), cw-1) + " "
		if h.Weekend() {
			sb.WriteString(formatWeekend(label))
		} else {
			sb.WriteString(formatMuted(label))
		}
	}
	lines = append(lines, sb.String())

	for _, week := range m.Weeks {
		sb.Reset()
		for _, c := range week {
			sb.WriteString(renderCell(c, cw, style))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func renderCell(c classify.Cell, cw int, style printStyle) string {
	if c.Filler {
		return strings.Repeat(" ", cw)
	}

	mark := " "
	if style.Indicators && c.HasEvent {
		mark = "•"
	}
	num := runewidth.FillLeft(fmt.Sprintf("%d", c.DayIndex+1), cw-1)

	switch {
	case c.Disabled:
		return formatDisabled(num) + mark
	case c.Selected, c.StartRange, c.EndRange:
		return formatSelected(num) + mark
	case c.InRange && !style.FadedRange:
		return formatRange(num) + mark
	case c.InRange:
		return formatMuted(num) + mark
	case c.Today:
		return formatToday(num) + mark
	case c.HasEvent:
		return formatEvent(num) + mark
	case c.Weekend:
		return formatWeekend(num) + mark
	default:
		return num + mark
	}
}

// printSideBySide lays month blocks out in as many columns as fit in width.
func printSideBySide(out io.Writer, blocks [][]string, width int) {
	if len(blocks) == 0 {
		return
	}
	const gap = "  "
	blockWidth := ansi.StringWidth(blocks[0][0])
	perRow := max(1, (width+len(gap))/(blockWidth+len(gap)))

	for i := 0; i < len(blocks); i += perRow {
		row := blocks[i:min(i+perRow, len(blocks))]
		height := 0
		for _, b := range row {
			height = max(height, len(b))
		}
		for line := 0; line < height; line++ {
			parts := make([]string, len(row))
			for j, b := range row {
				if line < len(b) {
					parts[j] = b[line]
				} else {
					parts[j] = strings.Repeat(" ", blockWidth)
				}
			}
			_, _ = fmt.Fprintln(out, strings.TrimRight(strings.Join(parts, gap), " "))
		}
		_, _ = fmt.Fprintln(out)
	}
}

func printEventList(out io.Writer, events []*event.Event) {
	if len(events) == 0 {
		return
	}
	_, _ = fmt.Fprintln(out, formatHeader("Events"))
	for _, e := range events {
		_, _ = fmt.Fprintf(out, "  %s  %s %s\n", formatMuted(e.Date.Format("Mon Jan 2")), formatEvent(e.Title), formatMuted(fmt.Sprintf("#%d", e.ID)))
	}
	_, _ = fmt.Fprintln(out)
}

func printSelection(out io.Writer, st selection.State) {
	switch s := st.(type) {
	case selection.SingleState:
		if s.Selected.IsZero() {
			_, _ = fmt.Fprintf(out, "%s none\n", formatHeader("Selected:"))
			return
		}
		_, _ = fmt.Fprintf(out, "%s %s\n", formatHeader("Selected:"), s.Selected)
	case selection.RangeState:
		_, _ = fmt.Fprintf(out, "%s %s .. %s\n", formatHeader("Range:"), s.Start, s.End)
	case selection.MultiRangeState:
		if len(s.Starts) == 0 {
			_, _ = fmt.Fprintf(out, "%s none\n", formatHeader("Blocks:"))
			return
		}
		_, _ = fmt.Fprintln(out, formatHeader("Blocks:"))
		for _, start := range s.Starts {
			marker := " "
			if start == s.Selected {
				marker = "*"
			}
			_, _ = fmt.Fprintf(out, "  %s %s .. %s\n", marker, start, s.BlockEnd(start))
		}
	}
}
