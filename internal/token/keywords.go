package token

var keywords = map[string]Kind{
	"var":       KwVar,
	"let":       KwLet,
	"func":      KwFunc,
	"class":     KwClass,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"actor":     KwActor,
	"protocol":  KwProtocol,
	"extension": KwExtension,
	"typealias": KwTypealias,
	"import":    KwImport,
	"subscript": KwSubscript,
	"init":      KwInit,
	"deinit":    KwDeinit,
	"case":      KwCase,
}

// LookupKeyword returns the keyword kind for ident, or Ident when the text is
// not a keyword of the declaration surface.
func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}

// declModifiers lists Swift declaration modifiers. They are contextual
// keywords, so the lexer keeps them as Ident and the parser matches by text.
var declModifiers = map[string]struct{}{
	"public":      {},
	"private":     {},
	"internal":    {},
	"fileprivate": {},
	"open":        {},
	"package":     {},
	"static":      {},
	"final":       {},
	"lazy":        {},
	"weak":        {},
	"unowned":     {},
	"override":    {},
	"required":    {},
	"convenience": {},
	"indirect":    {},
	"nonisolated": {},
	"dynamic":     {},
}

// IsDeclModifier reports whether the identifier text is a declaration
// modifier.
func IsDeclModifier(text string) bool {
	_, ok := declModifiers[text]
	return ok
}

// IsAccessModifier reports whether the identifier text controls visibility.
func IsAccessModifier(text string) bool {
	switch text {
	case "public", "private", "internal", "fileprivate", "open", "package":
		return true
	default:
		return false
	}
}
