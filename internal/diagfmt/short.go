package diagfmt

import (
	"io"

	"locksmith/internal/diag"
	"locksmith/internal/source"
)

// Short пишет однострочный формат "sev CODE path:line:col message".
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) error {
	_, err := io.WriteString(w, diag.FormatShortDiagnostics(bag.Items(), fs, includeNotes))
	return err
}
