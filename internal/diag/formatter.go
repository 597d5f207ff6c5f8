package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats diagnostics in a Rust-style format with source code snippets.
type Formatter struct {
	out         io.Writer
	sourceCache map[string]string // Cache of source files by filename

	errColor  *color.Color
	warnColor *color.Color
	noteColor *color.Color
	boldColor *color.Color
}

// NewFormatter creates a new diagnostic formatter writing to out. A nil out
// defaults to stderr.
func NewFormatter(out io.Writer) *Formatter {
	if out == nil {
		out = os.Stderr
	}
	return &Formatter{
		out:         out,
		sourceCache: make(map[string]string),
		errColor:    color.New(color.FgRed, color.Bold),
		warnColor:   color.New(color.FgYellow, color.Bold),
		noteColor:   color.New(color.FgCyan, color.Bold),
		boldColor:   color.New(color.Bold),
	}
}

// AddSource registers source text for a filename so spans into it can be
// rendered without touching the filesystem. The REPL and tests use this.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// loadSource loads source code for a file (cached).
func (f *Formatter) loadSource(filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

func (f *Formatter) severityColor(severity Severity) *color.Color {
	switch severity {
	case SeverityWarning:
		return f.warnColor
	case SeverityNote:
		return f.noteColor
	default:
		return f.errColor
	}
}

// Format formats and prints a diagnostic with a source snippet when the span
// resolves into known source text; otherwise it falls back to a single line.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	if !d.Span.IsValid() {
		f.printHelp(d)
		return
	}

	src, err := f.loadSource(d.Span.Filename)
	if err != nil || src == "" {
		fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		f.printHelp(d)
		return
	}

	f.printSnippet(src, d)
	f.printHelp(d)
}

// printHeader prints the error header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = string(SeverityError)
	}

	label := severity
	if d.Code != "" {
		label = fmt.Sprintf("%s[%s]", severity, d.Code)
	}

	fmt.Fprintf(f.out, "%s: %s\n", f.severityColor(d.Severity).Sprint(label), f.boldColor.Sprint(d.Message))
}

// printSnippet prints the offending source line with an underline for the span.
func (f *Formatter) printSnippet(src string, d Diagnostic) {
	lines := strings.Split(src, "\n")
	if d.Span.Line < 1 || d.Span.Line > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		return
	}

	lineContent := lines[d.Span.Line-1]
	lineNumStr := fmt.Sprintf("%d", d.Span.Line)
	gutter := strings.Repeat(" ", len(lineNumStr))

	fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
	fmt.Fprintf(f.out, " %s |\n", gutter)
	fmt.Fprintf(f.out, " %s | %s\n", lineNumStr, lineContent)

	width := d.Span.End - d.Span.Start
	if width < 1 {
		width = 1
	}
	col := d.Span.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(lineContent) {
		col = len(lineContent)
	}
	if col+width > len(lineContent)+1 {
		width = len(lineContent) + 1 - col
		if width < 1 {
			width = 1
		}
	}

	underline := strings.Repeat(" ", col) + strings.Repeat("^", width)
	fmt.Fprintf(f.out, " %s | %s\n", gutter, f.severityColor(d.Severity).Sprint(underline))
	fmt.Fprintf(f.out, " %s |\n", gutter)
}

// printHelp prints expected continuations and help text.
func (f *Formatter) printHelp(d Diagnostic) {
	if len(d.Expected) > 0 {
		fmt.Fprintf(f.out, "  = note: expected %s\n", strings.Join(d.Expected, ", "))
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "help: %s\n", d.Help)
	}
}
