// Package parser разбирает поверхность объявлений Swift-файла.
//
// Это не полный парсер Swift: выражения, тела функций и всё, что не
// влияет на экспансию, пропускается с балансировкой скобок. Дерево
// получается достаточно точным, чтобы найти аннотированные объявления
// и восстановить их структуру (атрибуты, модификаторы, имя, тип,
// инициализатор) по спанам.
package parser

import (
	"locksmith/internal/ast"
	"locksmith/internal/diag"
	"locksmith/internal/lexer"
	"locksmith/internal/source"
	"locksmith/internal/token"
)

// Options configures a single parse.
type Options struct {
	Reporter  diag.Reporter // nil — диагностики молча отбрасываются
	MaxErrors int           // 0 — без ограничения
}

type Parser struct {
	file *source.File
	lx   *lexer.Lexer
	opts Options
	tok  token.Token
	errs int
}

// ParseFile parses the declaration surface of one file.
func ParseFile(file *source.File, opts Options) *ast.File {
	p := &Parser{
		file: file,
		opts: opts,
	}
	p.lx = lexer.New(file, lexer.Options{
		Reporter: lexReporter{r: opts.Reporter},
	})
	p.next()

	out := &ast.File{ID: file.ID}
	out.Decls = p.parseDeclList(false)
	return out
}

// lexReporter переводит сигналы лексера в diag-коды.
type lexReporter struct {
	r diag.Reporter
}

func (lr lexReporter) Report(kind string, span source.Span, msg string) {
	if lr.r == nil {
		return
	}
	code := diag.LexInfo
	switch kind {
	case lexer.ReportUnknownChar:
		code = diag.LexUnknownChar
	case lexer.ReportUnterminatedString:
		code = diag.LexUnterminatedString
	case lexer.ReportUnterminatedBlockCmt:
		code = diag.LexUnterminatedBlockComment
	case lexer.ReportBadNumber:
		code = diag.LexBadNumber
	}
	lr.r.Report(code, diag.SevError, span, msg, nil)
}

func (p *Parser) next() {
	p.tok = p.lx.Next()
}

func (p *Parser) report(code diag.Code, span source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if p.opts.MaxErrors > 0 && p.errs >= p.opts.MaxErrors {
		return
	}
	p.errs++
	p.opts.Reporter.Report(code, diag.SevError, span, msg, nil)
}

// snippet возвращает срез исходника по спану.
func (p *Parser) snippet(sp source.Span) string {
	return string(p.file.Content[sp.Start:sp.End])
}

// hasNewline reports whether a newline precedes the token.
func hasNewline(tok token.Token) bool {
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaNewline {
			return true
		}
	}
	return false
}

// docAndIndent вытаскивает из leading-тривии токена отступ строки и
// примыкающий блок doc-комментариев. Пустая строка обрывает блок.
func docAndIndent(tok token.Token) (doc []token.Trivia, indent string) {
	lead := tok.Leading
	i := len(lead) - 1

	if i >= 0 && lead[i].Kind == token.TriviaSpace {
		indent = lead[i].Text
		i--
	}

	var rev []token.Trivia
	for i >= 0 {
		tr := lead[i]
		if tr.IsDoc() {
			rev = append(rev, tr)
			i--
			continue
		}
		// одиночный перевод строки и отступ не разрывают doc-блок,
		// пустая строка и обычный комментарий — разрывают
		if tr.Kind == token.TriviaSpace || (tr.Kind == token.TriviaNewline && len(tr.Text) == 1) {
			i--
			continue
		}
		break
	}

	for j := len(rev) - 1; j >= 0; j-- {
		doc = append(doc, rev[j])
	}
	return doc, indent
}
