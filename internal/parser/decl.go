package parser

import (
	"fmt"

	"locksmith/internal/ast"
	"locksmith/internal/diag"
	"locksmith/internal/token"
)

// parseDeclList разбирает объявления до EOF (или до закрывающей '}',
// если inBody).
func (p *Parser) parseDeclList(inBody bool) []ast.Decl {
	var decls []ast.Decl
	for {
		if p.tok.Kind == token.EOF {
			return decls
		}
		if inBody && p.tok.Kind == token.RBrace {
			return decls
		}
		if decl, ok := p.parseDecl(); ok {
			decls = append(decls, decl)
		}
	}
}

// parseDecl разбирает одно объявление. ok=false — поток содержал не
// объявление (statement, лишний токен), оно пропущено.
func (p *Parser) parseDecl() (ast.Decl, bool) {
	first := p.tok
	doc, indent := docAndIndent(first)
	start := first.Span

	attrs := p.parseAttrs()
	mods := p.parseModifiers()

	switch p.tok.Kind {
	case token.KwVar, token.KwLet:
		decl := p.parseBinding(attrs, mods)
		decl.Doc = doc
		decl.Indent = indent
		decl.Span = start.Cover(decl.Span)
		return decl, true

	case token.KwClass, token.KwStruct, token.KwEnum, token.KwActor,
		token.KwExtension, token.KwProtocol:
		decl := p.parseTypeDecl(attrs, mods)
		decl.Doc = doc
		decl.Indent = indent
		decl.Span = start.Cover(decl.Span)
		return decl, true

	case token.KwFunc, token.KwInit, token.KwDeinit, token.KwSubscript:
		decl := p.parseFuncLike(attrs, mods)
		decl.Doc = doc
		decl.Indent = indent
		decl.Span = start.Cover(decl.Span)
		return decl, true

	case token.KwImport, token.KwTypealias, token.KwCase:
		decl := p.parseLineDecl(attrs, mods)
		decl.Doc = doc
		decl.Indent = indent
		decl.Span = start.Cover(decl.Span)
		return decl, true
	}

	if len(attrs) > 0 {
		// атрибут повис не на объявлении; сохраняем узел, чтобы
		// экспандер мог указать на маркер
		if p.tok.Kind == token.EOF || p.tok.Kind == token.RBrace {
			p.report(diag.SynDanglingAttribute, attrs[0].Span,
				fmt.Sprintf("attribute @%s is not attached to a declaration", attrs[0].Name))
			return ast.Decl{}, false
		}
		intro := p.tok.Kind
		end := p.skipStatement()
		return ast.Decl{
			Kind:       ast.DeclOther,
			Attrs:      attrs,
			Modifiers:  mods,
			Doc:        doc,
			Indent:     indent,
			Introducer: intro,
			Span:       start.Cover(end),
		}, true
	}

	// обычный statement или мусор: пропускаем до конца строки
	p.skipStatement()
	return ast.Decl{}, false
}

// parseAttrs: последовательность @Name или @Name(...).
func (p *Parser) parseAttrs() []ast.Attr {
	var attrs []ast.Attr
	for p.tok.Kind == token.At {
		atSpan := p.tok.Span
		p.next()
		if p.tok.Kind != token.Ident && !p.tok.IsKeyword() {
			p.report(diag.SynExpectIdentifier, p.tok.Span, "expected attribute name after '@'")
			return attrs
		}
		attr := ast.Attr{
			Name:     p.tok.Text,
			NameSpan: p.tok.Span,
			Span:     atSpan.Cover(p.tok.Span),
		}
		p.next()
		// аргументы только на той же строке: @Attr\n(expr) — не аргументы
		if p.tok.Kind == token.LParen && !hasNewline(p.tok) {
			attr.ArgsSpan = p.skipBalanced(token.LParen, token.RParen)
			attr.Span = attr.Span.Cover(attr.ArgsSpan)
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

// parseModifiers: private, static, lazy и т.д.; private(set) — с хвостом.
func (p *Parser) parseModifiers() []ast.Modifier {
	var mods []ast.Modifier
	for p.tok.Kind == token.Ident && token.IsDeclModifier(p.tok.Text) {
		mod := ast.Modifier{Text: p.tok.Text, Span: p.tok.Span}
		p.next()
		if p.tok.Kind == token.LParen && !hasNewline(p.tok) {
			argSpan := p.skipBalanced(token.LParen, token.RParen)
			mod.Span = mod.Span.Cover(argSpan)
			mod.Text = p.snippet(mod.Span)
		}
		mods = append(mods, mod)
	}
	return mods
}

// parseBinding: var/let имя [: Тип] [= инициализатор] [{ accessors }].
func (p *Parser) parseBinding(attrs []ast.Attr, mods []ast.Modifier) ast.Decl {
	decl := ast.Decl{
		Kind:      ast.DeclVar,
		Attrs:     attrs,
		Modifiers: mods,
		Span:      p.tok.Span,
	}
	if p.tok.Kind == token.KwLet {
		decl.Kind = ast.DeclLet
	}
	p.next()

	if p.tok.Kind != token.Ident && p.tok.Kind != token.Underscore {
		p.report(diag.SynExpectIdentifier, p.tok.Span,
			fmt.Sprintf("expected identifier after '%s'", decl.Kind))
		return decl
	}
	decl.Name = ast.Ident{Text: p.tok.Text, Span: p.tok.Span}
	decl.Span = decl.Span.Cover(p.tok.Span)
	p.next()

	if p.tok.Kind == token.Colon {
		colonSpan := p.tok.Span
		p.next()
		typeSpan, ok := p.typeSlice()
		if !ok {
			p.report(diag.SynExpectType, colonSpan, "expected type after ':'")
		} else {
			decl.Type = &ast.TypeAnn{Text: p.snippet(typeSpan), Span: typeSpan}
			decl.Span = decl.Span.Cover(typeSpan)
		}
	}

	if p.tok.Kind == token.Assign {
		assignSpan := p.tok.Span
		p.next()
		exprSpan, ok := p.exprSlice()
		if !ok {
			p.report(diag.SynExpectExpression, assignSpan, "expected expression after '='")
		} else {
			decl.Init = &ast.Expr{Text: p.snippet(exprSpan), Span: exprSpan}
			decl.Span = decl.Span.Cover(exprSpan)
		}
	}

	// accessor-блок ({ get ... }) или observers ({ didSet ... })
	if p.tok.Kind == token.LBrace && !hasNewline(p.tok) {
		body := p.skipBalanced(token.LBrace, token.RBrace)
		decl.Span = decl.Span.Cover(body)
	}

	p.eatTerminator()
	return decl
}

// parseTypeDecl: class/struct/enum/actor/extension/protocol с телом.
func (p *Parser) parseTypeDecl(attrs []ast.Attr, mods []ast.Modifier) ast.Decl {
	decl := ast.Decl{
		Kind:       ast.DeclOther,
		Attrs:      attrs,
		Modifiers:  mods,
		Introducer: p.tok.Kind,
		Span:       p.tok.Span,
	}
	p.next()

	if p.tok.Kind == token.Ident {
		decl.Name = ast.Ident{Text: p.tok.Text, Span: p.tok.Span}
	}

	// заголовок (имя, generic-параметры, наследование, where) до '{'
	for p.tok.Kind != token.LBrace && p.tok.Kind != token.EOF {
		decl.Span = decl.Span.Cover(p.tok.Span)
		p.next()
	}
	if p.tok.Kind == token.EOF {
		p.report(diag.SynUnclosedDelimiter, decl.Span, "missing '{' in type declaration")
		return decl
	}

	p.next() // '{'
	decl.Body = p.parseDeclList(true)
	if p.tok.Kind != token.RBrace {
		p.report(diag.SynUnclosedDelimiter, decl.Span, "missing '}' closing type body")
		return decl
	}
	decl.Span = decl.Span.Cover(p.tok.Span)
	p.next()
	return decl
}

// parseFuncLike: func/init/deinit/subscript — сигнатура и тело пропускаются.
func (p *Parser) parseFuncLike(attrs []ast.Attr, mods []ast.Modifier) ast.Decl {
	decl := ast.Decl{
		Kind:       ast.DeclOther,
		Attrs:      attrs,
		Modifiers:  mods,
		Introducer: p.tok.Kind,
		Span:       p.tok.Span,
	}
	p.next()

	if p.tok.Kind == token.Ident || p.tok.Kind == token.Operator {
		decl.Name = ast.Ident{Text: p.tok.Text, Span: p.tok.Span}
	}

	depth := 0
	for p.tok.Kind != token.EOF {
		switch p.tok.Kind {
		case token.LParen, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			depth--
		case token.LBrace:
			if depth == 0 {
				// тело функции
				body := p.skipBalanced(token.LBrace, token.RBrace)
				decl.Span = decl.Span.Cover(body)
				return decl
			}
			depth++
		case token.RBrace:
			if depth == 0 {
				// protocol requirement без тела; '}' принадлежит телу типа
				return decl
			}
			depth--
		case token.Semicolon:
			if depth == 0 {
				p.next()
				return decl
			}
		}
		if depth == 0 && hasNewline(p.tok) && p.startsDecl() {
			return decl
		}
		decl.Span = decl.Span.Cover(p.tok.Span)
		p.next()
	}
	return decl
}

// parseLineDecl: import/typealias/case — до конца строки.
func (p *Parser) parseLineDecl(attrs []ast.Attr, mods []ast.Modifier) ast.Decl {
	decl := ast.Decl{
		Kind:       ast.DeclOther,
		Attrs:      attrs,
		Modifiers:  mods,
		Introducer: p.tok.Kind,
		Span:       p.tok.Span,
	}
	p.next()
	end := p.skipStatement()
	decl.Span = decl.Span.Cover(end)
	return decl
}

// startsDecl reports whether the current token can begin a declaration.
func (p *Parser) startsDecl() bool {
	switch p.tok.Kind {
	case token.At, token.KwVar, token.KwLet, token.KwFunc, token.KwClass,
		token.KwStruct, token.KwEnum, token.KwActor, token.KwProtocol,
		token.KwExtension, token.KwTypealias, token.KwImport,
		token.KwSubscript, token.KwInit, token.KwDeinit, token.KwCase:
		return true
	case token.Ident:
		return token.IsDeclModifier(p.tok.Text)
	default:
		return false
	}
}

func (p *Parser) eatTerminator() {
	if p.tok.Kind == token.Semicolon {
		p.next()
	}
}
