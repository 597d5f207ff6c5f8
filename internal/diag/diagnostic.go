package diag

import (
	"fmt"
	"strings"
)

// Stage identifies which frontend phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexerIllegalRune Code = "LEXER_ILLEGAL_RUNE"

	// Parser errors
	CodeParseUnexpectedToken Code = "PARSE_UNEXPECTED_TOKEN"
	CodeParseUnexpectedEOF   Code = "PARSE_UNEXPECTED_EOF"
	CodeParseIntOverflow     Code = "PARSE_INT_OVERFLOW"
	CodeParseBadAssignTarget Code = "PARSE_BAD_ASSIGN_TARGET"
	CodeParseMainName        Code = "PARSE_MAIN_NAME"
	CodeParseExternEntry     Code = "PARSE_EXTERN_ENTRY"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a frontend diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	// Expected lists the syntactically valid continuations at the failure
	// site, when the producing stage knows them.
	Expected []string
	Help     string // optional help text
}

// WithHelp returns a new diagnostic with the given help text.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// WithExpected returns a new diagnostic with the given expected continuations.
func (d Diagnostic) WithExpected(expected ...string) Diagnostic {
	d.Expected = append(d.Expected, expected...)
	return d
}

// String renders the diagnostic on a single line, without source context.
func (d Diagnostic) String() string {
	var sb strings.Builder
	if d.Span.IsValid() {
		sb.WriteString(d.Span.String())
		sb.WriteString(": ")
	}
	sb.WriteString(string(d.Severity))
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	if len(d.Expected) > 0 {
		sb.WriteString(" (expected ")
		sb.WriteString(strings.Join(d.Expected, ", "))
		sb.WriteString(")")
	}
	return sb.String()
}
