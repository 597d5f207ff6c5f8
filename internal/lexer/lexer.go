package lexer

import (
	"unicode"

	"github.com/diamondback-lang/diamondback/internal/diag"
)

type LexerErrorKind int

const (
	ErrIllegalRune LexerErrorKind = iota
)

type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrIllegalRune:
		return diag.CodeLexerIllegalRune
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Lexer represents the lexer state
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	Errors []LexerError
}

func (l *Lexer) addError(kind LexerErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, LexerError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		ch:     0,
		line:   1,
		column: 0, // will be 1 after first read()
	}
	l.read() // move to first character
	return l
}

// SetFilename attributes all subsequently produced spans to the given file.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

// read advances the lexer to the next character. Line/column always reflect
// the position of the character at pos.
func (l *Lexer) read() {
	l.pos++
	prevPos := l.pos - 1
	inputLen := len(l.input)

	if l.pos >= inputLen {
		// Moved past the last rune; normalize position to virtual EOF.
		if prevPos >= 0 && prevPos < inputLen {
			if l.input[prevPos] == '\n' {
				l.line++
				l.column = 1
			} else {
				l.column++
			}
		} else if prevPos < 0 {
			l.column = 1
		}
		l.ch = 0 // EOF
		return
	}

	l.ch = l.input[l.pos]

	if prevPos >= 0 && l.input[prevPos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peek returns the next character without advancing
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// makeToken creates a token with span information
func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, literal string) Token {
	return Token{
		Type:    tokType,
		Literal: literal,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.read()
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// twoCharToken consumes the current and next rune and produces a token for
// the pair. The caller must have verified the pair via peek.
func (l *Lexer) twoCharToken(tokType TokenType, startLine, startColumn, startPos int) Token {
	first := l.ch
	l.read()
	second := l.ch
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, string([]rune{first, second}))
}

func (l *Lexer) singleCharToken(tokType TokenType, startLine, startColumn, startPos int) Token {
	ch := l.ch
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, string(ch))
}

// NextToken scans and returns the next token in the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	startLine, startColumn, startPos := l.line, l.column, l.pos

	switch {
	case l.ch == 0:
		return l.makeToken(EOF, startLine, startColumn, startPos, startPos, "")

	case isIdentStart(l.ch):
		for isIdentPart(l.ch) {
			l.read()
		}
		literal := string(l.input[startPos:l.pos])
		return l.makeToken(LookupIdent(literal), startLine, startColumn, startPos, l.pos, literal)

	case isDigit(l.ch):
		for isDigit(l.ch) {
			l.read()
		}
		literal := string(l.input[startPos:l.pos])
		return l.makeToken(INT, startLine, startColumn, startPos, l.pos, literal)
	}

	switch l.ch {
	case '+':
		return l.singleCharToken(PLUS, startLine, startColumn, startPos)
	case '-':
		return l.singleCharToken(MINUS, startLine, startColumn, startPos)
	case '*':
		return l.singleCharToken(ASTERISK, startLine, startColumn, startPos)
	case '!':
		if l.peek() == '=' {
			return l.twoCharToken(NEQ, startLine, startColumn, startPos)
		}
		return l.singleCharToken(BANG, startLine, startColumn, startPos)
	case '=':
		if l.peek() == '=' {
			return l.twoCharToken(EQ, startLine, startColumn, startPos)
		}
		return l.singleCharToken(ASSIGN, startLine, startColumn, startPos)
	case '<':
		if l.peek() == '=' {
			return l.twoCharToken(LE, startLine, startColumn, startPos)
		}
		return l.singleCharToken(LT, startLine, startColumn, startPos)
	case '>':
		if l.peek() == '=' {
			return l.twoCharToken(GE, startLine, startColumn, startPos)
		}
		return l.singleCharToken(GT, startLine, startColumn, startPos)
	case ':':
		if l.peek() == '=' {
			return l.twoCharToken(GETS, startLine, startColumn, startPos)
		}
		return l.singleCharToken(COLON, startLine, startColumn, startPos)
	case '&':
		if l.peek() == '&' {
			return l.twoCharToken(LAND, startLine, startColumn, startPos)
		}
	case '|':
		if l.peek() == '|' {
			return l.twoCharToken(LOR, startLine, startColumn, startPos)
		}
	case ',':
		return l.singleCharToken(COMMA, startLine, startColumn, startPos)
	case '(':
		return l.singleCharToken(LPAREN, startLine, startColumn, startPos)
	case ')':
		return l.singleCharToken(RPAREN, startLine, startColumn, startPos)
	case '[':
		return l.singleCharToken(LBRACKET, startLine, startColumn, startPos)
	case ']':
		return l.singleCharToken(RBRACKET, startLine, startColumn, startPos)
	}

	tok := l.singleCharToken(ILLEGAL, startLine, startColumn, startPos)
	l.addError(ErrIllegalRune, "illegal character '"+tok.Literal+"'", tok.Span)
	return tok
}
