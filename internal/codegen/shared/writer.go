// Package shared holds the indentation/header-tracking machinery every
// per-target generator embeds (section 4.3: "architecture" common to all
// five backends). Grounded on internal/prettyprinter's CodePrinter
// (buffer + indent counter + write/writeln idiom), generalized here with
// a configurable indent unit (four spaces for most targets, two for
// TypeScript) and an insertion-ordered header/import set, since
// target source text - unlike re-printed Faber source - never needs
// column-width wrapping or operator-precedence-aware parenthesization.
package shared

import (
	"bytes"
	"sort"

	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/token"
)

// Writer is the per-target generator's output accumulator: an indentation
// counter plus a growing buffer, matching section 4.3's "generator object
// carrying an indentation counter... and a dispatch function."
type Writer struct {
	buf    bytes.Buffer
	indent int
	unit   string
}

// NewWriter creates a Writer using unit as one indentation level's text
// (e.g. "    " for C++/Rust/Python/Zig, "  " for TypeScript).
func NewWriter(unit string) *Writer {
	if unit == "" {
		unit = "    "
	}
	return &Writer{unit: unit}
}

// In increments the indentation counter; entering a block per section 4.3.
func (w *Writer) In() { w.indent++ }

// Out decrements the indentation counter; exiting a block per section 4.3.
func (w *Writer) Out() {
	if w.indent > 0 {
		w.indent--
	}
}

// Line writes one fully-indented line terminated with a newline.
func (w *Writer) Line(s string) {
	w.writeIndent()
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

// Blank writes an empty line with no indentation.
func (w *Writer) Blank() { w.buf.WriteByte('\n') }

// Raw writes s verbatim, with no indentation or trailing newline - used for
// building up a statement from several emitted expression fragments before
// a single trailing Line call.
func (w *Writer) Raw(s string) { w.buf.WriteString(s) }

func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.buf.WriteString(w.unit)
	}
}

// String returns the accumulated output.
func (w *Writer) String() string { return w.buf.String() }

// HeaderSet is an insertion-ordered, deduplicated set of required
// headers/imports (section 4.3.5). Each target's Generate finalizes it into
// that target's own ordering convention.
type HeaderSet struct {
	seen  map[string]bool
	order []string
}

// NewHeaderSet returns an empty HeaderSet.
func NewHeaderSet() *HeaderSet { return &HeaderSet{seen: make(map[string]bool)} }

// Add registers name, a no-op if already present.
func (h *HeaderSet) Add(name string) {
	if name == "" || h.seen[name] {
		return
	}
	h.seen[name] = true
	h.order = append(h.order, name)
}

// SortedAlpha returns every registered header alphabetized - the ordering
// Rust `use` statements and TypeScript/Python top-of-file imports use.
func (h *HeaderSet) SortedAlpha() []string {
	out := append([]string(nil), h.order...)
	sort.Strings(out)
	return out
}

// Partitioned splits headers into two alphabetized groups using isFirst to
// classify each entry - C++'s convention of system headers (`<...>`) sorted
// ahead of project headers (`"..."`).
func (h *HeaderSet) Partitioned(isFirst func(string) bool) (first, second []string) {
	for _, name := range h.order {
		if isFirst(name) {
			first = append(first, name)
		} else {
			second = append(second, name)
		}
	}
	sort.Strings(first)
	sort.Strings(second)
	return first, second
}

// Unsupported records an ErrUnsupportedConstruct diagnostic (section 7,
// target errors) and emits commentPrefix-prefixed placeholder line in the
// generator's own output, so generation always produces syntactically
// parseable (if incomplete) target text instead of aborting.
func Unsupported(w *Writer, diags *[]*diagnostics.Diagnostic, commentPrefix, targetName, construct string, pos token.Position) {
	*diags = append(*diags, diagnostics.New(diagnostics.ErrUnsupportedConstruct, pos, targetName, construct))
	w.Line(commentPrefix + " unsupported: " + construct)
}
