package parser

import (
	"testing"

	"locksmith/internal/ast"
	"locksmith/internal/diag"
	"locksmith/internal/source"
	"locksmith/internal/token"
)

func parseSrc(t *testing.T, src string) (*ast.File, *diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.swift", []byte(src))
	bag := diag.NewBag(32)
	file := ParseFile(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})
	return file, bag, fs
}

func singleBinding(t *testing.T, src string) ast.Decl {
	t.Helper()
	file, bag, _ := parseSrc(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(file.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(file.Decls))
	}
	d := file.Decls[0]
	if !d.IsBinding() {
		t.Fatalf("decl kind = %v, want binding", d.Kind)
	}
	return d
}

func TestParseVarFull(t *testing.T) {
	d := singleBinding(t, "var counter: Int = 0")
	if d.Kind != ast.DeclVar {
		t.Errorf("kind = %v, want var", d.Kind)
	}
	if d.Name.Text != "counter" {
		t.Errorf("name = %q", d.Name.Text)
	}
	if d.Type == nil || d.Type.Text != "Int" {
		t.Errorf("type = %+v, want Int", d.Type)
	}
	if d.Init == nil || d.Init.Text != "0" {
		t.Errorf("init = %+v, want 0", d.Init)
	}
}

func TestParseGenericTypeAndShorthandInit(t *testing.T) {
	d := singleBinding(t, "var result: Result<IntArray, MockError> = .failure(MockError())")
	if d.Type == nil || d.Type.Text != "Result<IntArray, MockError>" {
		t.Fatalf("type = %+v", d.Type)
	}
	if d.Init == nil || d.Init.Text != ".failure(MockError())" {
		t.Fatalf("init = %+v", d.Init)
	}
}

func TestParseQualifiedInit(t *testing.T) {
	d := singleBinding(t, "var result: Result<IntArray, MockError> = Result<IntArray, MockError>.failure(MockError())")
	if d.Init == nil || d.Init.Text != "Result<IntArray, MockError>.failure(MockError())" {
		t.Fatalf("init = %+v", d.Init)
	}
}

func TestParseVarNoType(t *testing.T) {
	d := singleBinding(t, "var counter = 0")
	if d.Type != nil {
		t.Errorf("type = %+v, want nil", d.Type)
	}
	if d.Init == nil || d.Init.Text != "0" {
		t.Errorf("init = %+v", d.Init)
	}
}

func TestParseVarNoInit(t *testing.T) {
	d := singleBinding(t, "var counter: Int")
	if d.Type == nil || d.Type.Text != "Int" {
		t.Errorf("type = %+v", d.Type)
	}
	if d.Init != nil {
		t.Errorf("init = %+v, want nil", d.Init)
	}
}

func TestParseLet(t *testing.T) {
	d := singleBinding(t, "let result: Int = 1")
	if d.Kind != ast.DeclLet {
		t.Errorf("kind = %v, want let", d.Kind)
	}
}

func TestParseAttrs(t *testing.T) {
	d := singleBinding(t, "@ThreadSafe\nvar counter: Int = 0")
	if len(d.Attrs) != 1 {
		t.Fatalf("attrs = %+v", d.Attrs)
	}
	a := d.Attrs[0]
	if a.Name != "ThreadSafe" {
		t.Errorf("attr name = %q", a.Name)
	}
	if a.HasArgs() {
		t.Errorf("attr should have no args: %+v", a)
	}
	if got, ok := ast.FindAttr(d.Attrs, "ThreadSafe"); !ok || got.Name != a.Name {
		t.Error("FindAttr failed")
	}
}

func TestParseAttrWithArgs(t *testing.T) {
	d := singleBinding(t, `@available(iOS 13, *) @ThreadSafe var x: Int = 0`)
	if len(d.Attrs) != 2 {
		t.Fatalf("attrs = %+v", d.Attrs)
	}
	if !d.Attrs[0].HasArgs() {
		t.Errorf("@available should carry args")
	}
	if d.Attrs[1].Name != "ThreadSafe" || d.Attrs[1].HasArgs() {
		t.Errorf("attrs[1] = %+v", d.Attrs[1])
	}
}

func TestParseModifiers(t *testing.T) {
	d := singleBinding(t, "public private(set) static var x: Int = 0")
	if len(d.Modifiers) != 3 {
		t.Fatalf("modifiers = %+v", d.Modifiers)
	}
	if d.Modifiers[0].Text != "public" {
		t.Errorf("modifiers[0] = %q", d.Modifiers[0].Text)
	}
	if d.Modifiers[1].Text != "private(set)" {
		t.Errorf("modifiers[1] = %q", d.Modifiers[1].Text)
	}
	if !d.HasModifier("static") {
		t.Error("static modifier lost")
	}
}

func TestParseDocAndIndent(t *testing.T) {
	src := "class Cache {\n    /// Shared counter.\n    @ThreadSafe\n    var counter: Int = 0\n}"
	file, bag, _ := parseSrc(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(file.Decls) != 1 || file.Decls[0].Introducer != token.KwClass {
		t.Fatalf("decls = %+v", file.Decls)
	}
	body := file.Decls[0].Body
	if len(body) != 1 {
		t.Fatalf("body = %+v", body)
	}
	d := body[0]
	if d.Indent != "    " {
		t.Errorf("indent = %q, want four spaces", d.Indent)
	}
	if len(d.Doc) != 1 || d.Doc[0].Text != "/// Shared counter." {
		t.Errorf("doc = %+v", d.Doc)
	}
}

func TestParseNestedTypes(t *testing.T) {
	src := `
struct Outer {
    struct Inner {
        var deep: Int = 0
    }
    var shallow: String = ""
}
`
	file, bag, _ := parseSrc(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	var names []string
	file.Walk(func(d *ast.Decl, depth int) bool {
		if d.IsBinding() {
			names = append(names, d.Name.Text)
		}
		return true
	})
	want := []string{"deep", "shallow"}
	if len(names) != len(want) {
		t.Fatalf("bindings = %v, want %v", names, want)
	}
	for i := range names {
		if names[i] != want[i] {
			t.Fatalf("bindings = %v, want %v", names, want)
		}
	}
}

func TestParseFuncSkipsBody(t *testing.T) {
	src := `
func compute() -> Int {
    var local = 1
    return local
}
var global: Int = 2
`
	file, bag, _ := parseSrc(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(file.Decls) != 2 {
		t.Fatalf("decls = %d, want 2 (func body must be opaque)", len(file.Decls))
	}
	if file.Decls[0].Introducer != token.KwFunc {
		t.Errorf("decls[0] = %+v", file.Decls[0])
	}
	if file.Decls[1].Name.Text != "global" {
		t.Errorf("decls[1] = %+v", file.Decls[1])
	}
}

func TestParseAttrOnFunc(t *testing.T) {
	src := "@ThreadSafe func compute() {}"
	file, bag, _ := parseSrc(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(file.Decls) != 1 {
		t.Fatalf("decls = %+v", file.Decls)
	}
	d := file.Decls[0]
	if d.Kind != ast.DeclOther || d.Introducer != token.KwFunc {
		t.Fatalf("decl = %+v", d)
	}
	if _, ok := ast.FindAttr(d.Attrs, "ThreadSafe"); !ok {
		t.Fatal("attribute lost on func decl")
	}
}

func TestParseMissingBrace(t *testing.T) {
	_, bag, _ := parseSrc(t, "class Broken {\n    var x: Int = 0\n")
	if !bag.HasErrors() {
		t.Fatal("expected unclosed delimiter diagnostic")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynUnclosedDelimiter {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %+v", bag.Items())
	}
}

func TestParseSkipsStatements(t *testing.T) {
	src := "print(\"hello\")\nvar x: Int = 0\nx += 1"
	file, bag, _ := parseSrc(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(file.Decls) != 1 || file.Decls[0].Name.Text != "x" {
		t.Fatalf("decls = %+v", file.Decls)
	}
}

func TestBindingSpanCoversInitializer(t *testing.T) {
	src := "@ThreadSafe var counter: Int = 0"
	file, _, fs := parseSrc(t, src)
	d := file.Decls[0]
	got := fs.Get(d.Span.File).Snippet(d.Span)
	if got != src {
		t.Fatalf("span text = %q, want %q", got, src)
	}
}
