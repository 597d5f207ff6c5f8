package lexer

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // index in []rune or original string
	End      int    // exclusive end index
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string // exact runes from source
	Span    Span   // source location information
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT TokenType = "IDENT" // main, foo, x, y, ...
	INT   TokenType = "INT"   // 1343456

	// Operators
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	BANG     TokenType = "!"
	LAND     TokenType = "&&"
	LOR      TokenType = "||"

	LT  TokenType = "<"
	GT  TokenType = ">"
	LE  TokenType = "<="
	GE  TokenType = ">="
	EQ  TokenType = "=="
	NEQ TokenType = "!="

	ASSIGN TokenType = "="
	GETS   TokenType = ":="

	// Delimiters
	COMMA TokenType = ","
	COLON TokenType = ":"

	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"

	// Keywords
	DEF    TokenType = "DEF"
	AND    TokenType = "AND"
	IN     TokenType = "IN"
	LET    TokenType = "LET"
	IF     TokenType = "IF"
	ELSE   TokenType = "ELSE"
	EXTERN TokenType = "EXTERN"
	TRUE   TokenType = "TRUE"
	FALSE  TokenType = "FALSE"

	// Primitive-operator keywords
	ADD1     TokenType = "ADD1"
	SUB1     TokenType = "SUB1"
	ISINT    TokenType = "ISINT"
	ISBOOL   TokenType = "ISBOOL"
	ISARRAY  TokenType = "ISARRAY"
	NEWARRAY TokenType = "NEWARRAY"
	LENGTH   TokenType = "LENGTH"
)

var keywords = map[string]TokenType{
	"def":      DEF,
	"and":      AND,
	"in":       IN,
	"let":      LET,
	"if":       IF,
	"else":     ELSE,
	"extern":   EXTERN,
	"true":     TRUE,
	"false":    FALSE,
	"add1":     ADD1,
	"sub1":     SUB1,
	"isInt":    ISINT,
	"isBool":   ISBOOL,
	"isArray":  ISARRAY,
	"newArray": NEWARRAY,
	"length":   LENGTH,
}

// LookupIdent checks if the identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsPrimKeyword reports whether the token type is one of the fixed
// single-argument primitive-operator keywords.
func IsPrimKeyword(tt TokenType) bool {
	switch tt {
	case ADD1, SUB1, ISINT, ISBOOL, ISARRAY, NEWARRAY, LENGTH:
		return true
	default:
		return false
	}
}
