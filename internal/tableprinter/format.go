package tableprinter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/olekukonko/tablewriter"
)

// Style selects how a table is rendered.
type Style string

const (
	StyleBasic    Style = "basic"
	StyleFancy    Style = "fancy"
	StyleMarkdown Style = "markdown"
)

// Styles returns the names of all supported styles.
func Styles() []string {
	return []string{string(StyleBasic), string(StyleFancy), string(StyleMarkdown)}
}

// ParseStyle returns the Style named s.
func ParseStyle(s string) (Style, error) {
	for _, name := range Styles() {
		if s == name {
			return Style(s), nil
		}
	}
	return "", fmt.Errorf("invalid style %q (valid: %s)", s, strings.Join(Styles(), ", "))
}

// Options controls rendering. Headers and Separators only affect the fancy
// style; Headers wins when both are set.
type Options struct {
	Style      Style
	Spacing    int
	Headers    bool
	Separators bool
}

// MaxSpacing bounds the padding accepted from users.
const MaxSpacing = 64

// DefaultOptions returns basic style with one space of padding.
func DefaultOptions() Options {
	return Options{Style: StyleBasic, Spacing: 1}
}

// FormatError reports a failure while building or writing rendered output.
type FormatError struct {
	Style Style
	Err   error
}

func (e *FormatError) Error() string {
	if e.Style == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s style: %v", e.Style, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Format renders t according to opts.
func Format(t *Table, opts Options) (string, error) {
	switch opts.Style {
	case StyleBasic:
		return BasicFormat(t, opts.Spacing)
	case StyleFancy:
		return FancyFormat(t, opts.Headers, opts.Separators, opts.Spacing)
	case StyleMarkdown:
		return MarkdownFormat(t)
	default:
		return "", &FormatError{Err: fmt.Errorf("unknown style %q", opts.Style)}
	}
}

// BasicFormat renders each record on its own line, every field padded to
// its column width plus spacing. Trailing whitespace is trimmed from each
// line.
func BasicFormat(t *Table, spacing int) (string, error) {
	var sb strings.Builder
	if err := writeBasic(&sb, t, spacing); err != nil {
		return "", &FormatError{Style: StyleBasic, Err: err}
	}
	return sb.String(), nil
}

// FancyFormat renders t inside box-drawing borders. With headers, a single
// separator follows the first row; otherwise, with separators, one is drawn
// between every pair of rows.
func FancyFormat(t *Table, headers, separators bool, spacing int) (string, error) {
	var sb strings.Builder
	if err := writeFancy(&sb, t, headers, separators, spacing); err != nil {
		return "", &FormatError{Style: StyleFancy, Err: err}
	}
	return sb.String(), nil
}

// MarkdownFormat renders t as a markdown table using the first record as
// the header row.
func MarkdownFormat(t *Table) (string, error) {
	var buf bytes.Buffer
	if err := writeMarkdown(&buf, t); err != nil {
		return "", &FormatError{Style: StyleMarkdown, Err: err}
	}
	return buf.String(), nil
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func writeBasic(w io.Writer, t *Table, spacing int) error {
	ew := &errWriter{w: w}
	var line strings.Builder
	for _, rec := range t.Records {
		line.Reset()
		for i, width := range t.Widths {
			line.WriteString(padRight(cell(rec, i), width+spacing))
		}
		ew.write(strings.TrimRightFunc(line.String(), unicode.IsSpace))
		ew.write("\n")
	}
	return ew.err
}

func writeFancy(w io.Writer, t *Table, headers, separators bool, spacing int) error {
	ew := &errWriter{w: w}

	ew.write(borderLine(t.Widths, spacing, "┌", "┬", "┐"))
	for i, rec := range t.Records {
		if separatorBefore(i, headers, separators) {
			ew.write(borderLine(t.Widths, spacing, "├", "┼", "┤"))
		}

		var line strings.Builder
		for j, width := range t.Widths {
			line.WriteString("│")
			line.WriteString(spaces(spacing))
			line.WriteString(padRight(cell(rec, j), width))
			line.WriteString(spaces(spacing))
		}
		line.WriteString("│\n")
		ew.write(line.String())
	}
	ew.write(borderLine(t.Widths, spacing, "└", "┴", "┘"))

	return ew.err
}

func writeMarkdown(w io.Writer, t *Table) error {
	if len(t.Records) == 0 {
		return nil
	}

	// tablewriter drops write errors, so render into a buffer first.
	ew := &errWriter{w: w}
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(markdownRow(t.Records[0], len(t.Widths)))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, rec := range t.Records[1:] {
		table.Append(markdownRow(rec, len(t.Widths)))
	}
	table.Render()

	ew.write(buf.String())
	return ew.err
}

// separatorBefore reports whether a separator line precedes row i.
func separatorBefore(i int, headers, separators bool) bool {
	if i == 0 {
		return false
	}
	if headers {
		return i == 1
	}
	return separators
}

// borderLine draws a horizontal rule across all columns. Each segment is as
// wide as a padded data cell.
func borderLine(widths []int, spacing int, left, junction, right string) string {
	var sb strings.Builder
	if len(widths) == 0 {
		sb.WriteString(left)
	}
	for i, width := range widths {
		if i == 0 {
			sb.WriteString(left)
		} else {
			sb.WriteString(junction)
		}
		sb.WriteString(rule(width + 2*spacing))
	}
	sb.WriteString(right)
	sb.WriteString("\n")
	return sb.String()
}

// normalize returns exactly n fields of rec.
func normalize(rec []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = cell(rec, i)
	}
	return out
}

// markdownRow is normalize with pipes escaped so they stay inside the cell.
func markdownRow(rec []string, n int) []string {
	row := normalize(rec, n)
	for i, f := range row {
		row[i] = strings.ReplaceAll(f, "|", `\|`)
	}
	return row
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func rule(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("─", n)
}
