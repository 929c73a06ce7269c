package token

import (
	"locksmith/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a keyword of the declaration surface.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwVar, KwLet, KwFunc, KwClass, KwStruct, KwEnum, KwActor, KwProtocol,
		KwExtension, KwTypealias, KwImport, KwSubscript, KwInit, KwDeinit, KwCase:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// OpensBracket reports whether the token opens a balanced pair.
func (t Token) OpensBracket() bool {
	switch t.Kind {
	case LParen, LBrace, LBracket:
		return true
	default:
		return false
	}
}

// ClosesBracket reports whether the token closes a balanced pair.
func (t Token) ClosesBracket() bool {
	switch t.Kind {
	case RParen, RBrace, RBracket:
		return true
	default:
		return false
	}
}
