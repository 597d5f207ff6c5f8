package parser

import (
	"github.com/diamondback-lang/diamondback/internal/lexer"
)

type delimitedConfig struct {
	Closing   lexer.TokenType
	Separator lexer.TokenType

	AllowEmpty    bool
	AllowTrailing bool

	MissingElementMsg   string
	MissingSeparatorMsg string
}

type delimitedResult[T any] struct {
	Items    []T
	Trailing bool
}

// parseDelimited parses a separator-delimited sequence terminated by a
// closing token. On entry curTok sits on the first element (or already on the
// closing token when the sequence may be empty); on success curTok sits on
// the closing token. parseItem must leave curTok on the last token of the
// item it parsed.
func parseDelimited[T any](p *Parser, cfg delimitedConfig, parseItem func(idx int) (T, bool)) (delimitedResult[T], bool) {
	var result delimitedResult[T]

	if cfg.Separator == "" {
		cfg.Separator = lexer.COMMA
	}

	if cfg.Closing == "" {
		panic("parseDelimited requires a closing token")
	}

	if p.curTok.Type == cfg.Closing {
		if cfg.AllowEmpty {
			return result, true
		}
		msg := cfg.MissingElementMsg
		if msg == "" {
			msg = "expected element"
		}
		p.reportError(msg, p.curTok.Span)
		return result, false
	}

	for {
		item, ok := parseItem(len(result.Items))
		if !ok {
			return result, false
		}
		result.Items = append(result.Items, item)

		switch p.peekTok.Type {
		case cfg.Separator:
			p.nextToken() // move to separator
			p.nextToken() // move to next potential element

			if p.curTok.Type == cfg.Closing {
				if cfg.AllowTrailing {
					result.Trailing = true
					return result, true
				}
				msg := cfg.MissingElementMsg
				if msg == "" {
					msg = "expected element"
				}
				p.reportError(msg, p.curTok.Span)
				return result, false
			}
			continue
		case cfg.Closing:
			p.nextToken()
			return result, true
		default:
			msg := cfg.MissingSeparatorMsg
			if msg == "" {
				p.reportUnexpected(p.peekTok, tokenLabel(cfg.Separator), tokenLabel(cfg.Closing))
				return result, false
			}
			p.reportError(msg, p.peekTok.Span)
			return result, false
		}
	}
}
