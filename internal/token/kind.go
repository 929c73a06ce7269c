package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwVar represents the 'var' keyword (mutable-variable binding).
	KwVar // var
	// KwLet represents the 'let' keyword (immutable binding).
	KwLet // let
	// KwFunc represents the 'func' keyword.
	KwFunc // func
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwActor represents the 'actor' keyword.
	KwActor // actor
	// KwProtocol represents the 'protocol' keyword.
	KwProtocol // protocol
	// KwExtension represents the 'extension' keyword.
	KwExtension // extension
	// KwTypealias represents the 'typealias' keyword.
	KwTypealias // typealias
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwSubscript represents the 'subscript' keyword.
	KwSubscript // subscript
	// KwInit represents the 'init' keyword.
	KwInit // init
	// KwDeinit represents the 'deinit' keyword.
	KwDeinit // deinit
	// KwCase represents the 'case' keyword.
	KwCase // case

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token (interpolation kept inside).
	StringLit

	// At represents the attribute marker token.
	At // @
	// Colon represents the colon token.
	Colon // :
	// Assign represents a single '=' token.
	Assign // =
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Arrow represents the '->' token.
	Arrow // ->
	// Question represents the '?' token.
	Question // ?
	// Bang represents the '!' token.
	Bang // !
	// Amp represents the '&' token.
	Amp // &
	// Lt represents the '<' token.
	Lt // <
	// Gt represents the '>' token.
	Gt // >
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Underscore represents a lone '_' token.
	Underscore // _
	// Operator collects every remaining operator the expander has no
	// structural interest in (+, -, ==, ??, ..., &&, etc.).
	Operator
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case KwVar:
		return "var"
	case KwLet:
		return "let"
	case KwFunc:
		return "func"
	case KwClass:
		return "class"
	case KwStruct:
		return "struct"
	case KwEnum:
		return "enum"
	case KwActor:
		return "actor"
	case KwProtocol:
		return "protocol"
	case KwExtension:
		return "extension"
	case KwTypealias:
		return "typealias"
	case KwImport:
		return "import"
	case KwSubscript:
		return "subscript"
	case KwInit:
		return "init"
	case KwDeinit:
		return "deinit"
	case KwCase:
		return "case"
	case IntLit:
		return "IntLit"
	case FloatLit:
		return "FloatLit"
	case StringLit:
		return "StringLit"
	case At:
		return "@"
	case Colon:
		return ":"
	case Assign:
		return "="
	case Semicolon:
		return ";"
	case Comma:
		return ","
	case Dot:
		return "."
	case Arrow:
		return "->"
	case Question:
		return "?"
	case Bang:
		return "!"
	case Amp:
		return "&"
	case Lt:
		return "<"
	case Gt:
		return ">"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Underscore:
		return "_"
	case Operator:
		return "Operator"
	}
	return "Unknown"
}
