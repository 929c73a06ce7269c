package lexer

import (
	"testing"

	"locksmith/internal/source"
	"locksmith/internal/token"
)

type capturedReport struct {
	kind string
	msg  string
}

type captureReporter struct {
	reports []capturedReport
}

func (c *captureReporter) Report(kind string, _ source.Span, msg string) {
	c.reports = append(c.reports, capturedReport{kind: kind, msg: msg})
}

func lexAll(t *testing.T, src string) ([]token.Token, *captureReporter) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.swift", []byte(src))
	rep := &captureReporter{}
	lx := New(fs.Get(id), Options{Reporter: rep})
	return lx.Tokens(), rep
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestLexerKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{
			name: "var decl with type and init",
			src:  "var counter: Int = 0",
			want: []token.Kind{token.KwVar, token.Ident, token.Colon, token.Ident, token.Assign, token.IntLit, token.EOF},
		},
		{
			name: "attribute",
			src:  "@ThreadSafe var x: Int = 1",
			want: []token.Kind{token.At, token.Ident, token.KwVar, token.Ident, token.Colon, token.Ident, token.Assign, token.IntLit, token.EOF},
		},
		{
			name: "let decl",
			src:  "let name: String = \"hi\"",
			want: []token.Kind{token.KwLet, token.Ident, token.Colon, token.Ident, token.Assign, token.StringLit, token.EOF},
		},
		{
			name: "func header",
			src:  "func greet() -> String {}",
			want: []token.Kind{token.KwFunc, token.Ident, token.LParen, token.RParen, token.Arrow, token.Ident, token.LBrace, token.RBrace, token.EOF},
		},
		{
			name: "generic type",
			src:  "var xs: [Int: Array<String>] = [:]",
			want: []token.Kind{
				token.KwVar, token.Ident, token.Colon,
				token.LBracket, token.Ident, token.Colon, token.Ident, token.Lt, token.Ident, token.Gt, token.RBracket,
				token.Assign, token.LBracket, token.Colon, token.RBracket, token.EOF,
			},
		},
		{
			name: "optional and force unwrap",
			src:  "var a: Int? = b!",
			want: []token.Kind{token.KwVar, token.Ident, token.Colon, token.Ident, token.Question, token.Assign, token.Ident, token.Bang, token.EOF},
		},
		{
			name: "compound operators coalesce",
			src:  "a += b == c",
			want: []token.Kind{token.Ident, token.Operator, token.Ident, token.Operator, token.Ident, token.EOF},
		},
		{
			name: "range operator",
			src:  "0 ..< 10",
			want: []token.Kind{token.IntLit, token.Operator, token.IntLit, token.EOF},
		},
		{
			name: "member access",
			src:  "self.value",
			want: []token.Kind{token.Ident, token.Dot, token.Ident, token.EOF},
		},
		{
			name: "underscore alone",
			src:  "_ = x",
			want: []token.Kind{token.Underscore, token.Assign, token.Ident, token.EOF},
		},
		{
			name: "underscore prefixed ident",
			src:  "_cache",
			want: []token.Kind{token.Ident, token.EOF},
		},
		{
			name: "float literals",
			src:  "1.5 2e10 0x1Fp2 1_000",
			want: []token.Kind{token.FloatLit, token.FloatLit, token.FloatLit, token.IntLit, token.EOF},
		},
		{
			name: "class keyword",
			src:  "class Cache {}",
			want: []token.Kind{token.KwClass, token.Ident, token.LBrace, token.RBrace, token.EOF},
		},
		{
			// private/static лексер отдаёт как Ident, парсер решает сам
			name: "modifiers are idents",
			src:  "private static var x: Int = 0",
			want: []token.Kind{token.Ident, token.Ident, token.KwVar, token.Ident, token.Colon, token.Ident, token.Assign, token.IntLit, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, rep := lexAll(t, tt.src)
			got := kindsOf(toks)
			if len(got) != len(tt.want) {
				t.Fatalf("token kinds = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("token %d = %v, want %v (all: %v)", i, got[i], tt.want[i], got)
				}
			}
			if len(rep.reports) != 0 {
				t.Fatalf("unexpected reports: %+v", rep.reports)
			}
		})
	}
}

func TestLexerText(t *testing.T) {
	toks, _ := lexAll(t, "@ThreadSafe var counter: Int = 0")
	wantTexts := []string{"@", "ThreadSafe", "var", "counter", ":", "Int", "=", "0", ""}
	if len(toks) != len(wantTexts) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantTexts))
	}
	for i, want := range wantTexts {
		if toks[i].Text != want {
			t.Errorf("token %d text = %q, want %q", i, toks[i].Text, want)
		}
	}
}

func TestLexerStringLiterals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		text string
	}{
		{"plain", `"hello"`, `"hello"`},
		{"escape", `"a\"b"`, `"a\"b"`},
		{"interpolation", `"count: \(a + (b))"`, `"count: \(a + (b))"`},
		{"nested string in interpolation", `"x\("y")z"`, `"x\("y")z"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, rep := lexAll(t, tt.src)
			if toks[0].Kind != token.StringLit {
				t.Fatalf("kind = %v, want StringLit", toks[0].Kind)
			}
			if toks[0].Text != tt.text {
				t.Errorf("text = %q, want %q", toks[0].Text, tt.text)
			}
			if len(rep.reports) != 0 {
				t.Errorf("unexpected reports: %+v", rep.reports)
			}
		})
	}
}

func TestLexerReports(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind string
	}{
		{"unterminated string", `"abc`, ReportUnterminatedString},
		{"string broken by newline", "\"abc\nvar x", ReportUnterminatedString},
		{"unterminated block comment", "/* nope", ReportUnterminatedBlockCmt},
		{"bad hex", "0x", ReportBadNumber},
		{"bad binary", "0b2", ReportBadNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rep := lexAll(t, tt.src)
			if len(rep.reports) == 0 {
				t.Fatalf("expected a %s report, got none", tt.kind)
			}
			if rep.reports[0].kind != tt.kind {
				t.Errorf("report kind = %s, want %s", rep.reports[0].kind, tt.kind)
			}
		})
	}
}

func TestLexerLeadingTrivia(t *testing.T) {
	src := "/// Shared counter.\n@ThreadSafe\nvar counter: Int = 0"
	toks, _ := lexAll(t, src)

	at := toks[0]
	if at.Kind != token.At {
		t.Fatalf("first token = %v, want At", at.Kind)
	}
	var sawDoc bool
	for _, tr := range at.Leading {
		if tr.Kind == token.TriviaDocLine {
			sawDoc = true
			if tr.Text != "/// Shared counter." {
				t.Errorf("doc trivia text = %q", tr.Text)
			}
		}
	}
	if !sawDoc {
		t.Fatalf("doc comment not attached to @: %+v", at.Leading)
	}

	// тривия между @ThreadSafe и var прилипает к var
	kwVar := toks[2]
	if kwVar.Kind != token.KwVar {
		t.Fatalf("third token = %v, want KwVar", kwVar.Kind)
	}
	if len(kwVar.Leading) == 0 || kwVar.Leading[0].Kind != token.TriviaNewline {
		t.Errorf("var leading = %+v, want newline trivia", kwVar.Leading)
	}
}

func TestLexerNestedBlockComment(t *testing.T) {
	toks, rep := lexAll(t, "/* outer /* inner */ still outer */ var")
	if len(rep.reports) != 0 {
		t.Fatalf("unexpected reports: %+v", rep.reports)
	}
	if toks[0].Kind != token.KwVar {
		t.Fatalf("first token = %v, want KwVar", toks[0].Kind)
	}
	if len(toks[0].Leading) == 0 || toks[0].Leading[0].Kind != token.TriviaBlockComment {
		t.Fatalf("leading = %+v, want block comment", toks[0].Leading)
	}
}

func TestLexerPeek(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.swift", []byte("var x"))
	lx := New(fs.Get(id), Options{})

	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Span != n.Span {
		t.Fatalf("Peek %v != Next %v", p, n)
	}
	if lx.Next().Kind != token.Ident {
		t.Fatal("expected Ident after var")
	}
	if lx.Next().Kind != token.EOF {
		t.Fatal("expected EOF")
	}
	if lx.Next().Kind != token.EOF {
		t.Fatal("EOF must be sticky")
	}
}
