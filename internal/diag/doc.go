// Package diag defines the diagnostic model shared by the lexer, parser and
// the expansion engine.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the pipeline phases.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//   - Model generated code as structured text edits that the driver or CLI can
//     apply to source files.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering lives in internal/diagfmt; applying edits lives in
// internal/rewrite and the driver layer.
//
// # Data model
//
// Diagnostic is the central record: Severity, Code (compact numeric identifier
// with a stable string form), Message, the primary source.Span, and optional
// Notes. Notes must add new context (e.g. "declared here") rather than repeat
// the diagnostic message.
//
// The expansion engine never attaches edits to a Diagnostic: per the expansion
// contract a site produces either generated code or a diagnostic, never both.
// TextEdit therefore lives here only as the shared currency between the
// synthesizer and the rewrite engine; OldText acts as a guard that the rewrite
// engine validates before applying an edit.
//
// Keep the data model deterministic and side-effect free, so the CLI and the
// disk cache can safely serialise diagnostics.
package diag
