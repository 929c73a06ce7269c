package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"locksmith/internal/diag"
	"locksmith/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	codeColor    = color.New(color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
	noteColor    = color.New(color.FgCyan)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <sev> <CODE>: <message>
//	  <строка исходника>
//	  ^~~~~ по спану
//
// затем Notes, если включены. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	path := formatPath(file, fs, opts.PathMode)
	sev := severityLabel(d.Severity)
	if opts.Color {
		sev = paint(severityColor(d.Severity), sev)
	}
	code := d.Code.ID()
	if opts.Color {
		code = paint(codeColor, code)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, code, d.Message)
	printSnippet(w, file, d.Primary, start, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nStart, _ := fs.Resolve(note.Span)
			label := "note"
			if opts.Color {
				label = paint(noteColor, label)
			}
			nFile := fs.Get(note.Span.File)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				label, formatPath(nFile, fs, opts.PathMode), nStart.Line, nStart.Col, note.Msg)
		}
	}
}

// printSnippet печатает строку исходника и подчёркивание ^~~~ под спаном.
func printSnippet(w io.Writer, file *source.File, span source.Span, start source.LineCol, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" && span.Empty() {
		return
	}

	display := strings.ReplaceAll(line, "\t", " ")
	if opts.Width > 0 && runewidth.StringWidth(display) > opts.Width {
		display = runewidth.Truncate(display, opts.Width, "...")
	}
	fmt.Fprintf(w, "  %s\n", display)

	// колонки 1-based; ширина подчёркивания ограничена концом строки
	col := int(start.Col)
	if col < 1 {
		col = 1
	}
	prefix := ""
	if col-1 <= len(line) {
		prefix = strings.ReplaceAll(line[:col-1], "\t", " ")
	}
	pad := runewidth.StringWidth(prefix)

	length := int(span.Len())
	remain := len(line) - (col - 1)
	if length > remain {
		length = remain
	}
	if length < 1 {
		length = 1
	}

	caret := "^" + strings.Repeat("~", length-1)
	if opts.Color {
		caret = paint(caretColor, caret)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), caret)
}

func formatPath(file *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return file.FormatPath("absolute", "")
	case PathModeRelative:
		return file.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return file.FormatPath("basename", "")
	default:
		return file.FormatPath("auto", fs.BaseDir())
	}
}

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// paint форсирует цвет независимо от глобального color.NoColor:
// решение о цвете уже принял вызывающий через opts.Color.
func paint(c *color.Color, s string) string {
	forced := *c
	forced.EnableColor()
	return forced.Sprint(s)
}
