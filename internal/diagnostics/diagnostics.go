// Package diagnostics is the compiler's error catalog. Every phase reports
// failures as Diagnostic values instead of returning a Go error; analysis and
// generation always run to completion and hand back a possibly-empty list.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/faber/internal/token"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Code is a stable diagnostic identifier (section 6.6). Codes must never be
// renumbered once shipped; new conditions get new codes.
type Code string

const (
	// Scope errors
	ErrUndefinedVariable   Code = "S001"
	ErrAlreadyDefined      Code = "S002"
	ErrImmutableAssignment Code = "S003"
	ErrCircularAlias       Code = "S004"
	ErrCircularImport      Code = "S005"

	// Type errors
	ErrTypeMismatch             Code = "S006"
	ErrIncompatibleComparison   Code = "S007"
	ErrReturnOutsideFunction    Code = "S008"
	ErrAwaitOutsideAsync        Code = "S009"
	ErrBorrowedWithDefault      Code = "S010"
	ErrRequiredAfterOptional    Code = "S011"
	ErrEmptyDiscretio           Code = "S012"

	// Module errors
	ErrModuleNotFound  Code = "M001"
	ErrModuleParseFail Code = "M002"

	// Codegen (target) errors
	ErrUnsupportedConstruct Code = "G001"
)

var templates = map[Code]struct {
	text string
	help string
}{
	ErrUndefinedVariable:        {"undefined variable %q", "declare it with varia/fixum before use, or check the import that should provide it"},
	ErrAlreadyDefined:           {"%q already defined at line %d", "rename this declaration or remove the duplicate"},
	ErrImmutableAssignment:      {"cannot assign to immutable binding %q", "declare %q with varia/variandum if it needs to change"},
	ErrCircularAlias:            {"circular type alias involving %q", "break the cycle by naming a concrete type in the chain"},
	ErrCircularImport:           {"circular import: %s", "restructure the modules to remove the cycle"},
	ErrTypeMismatch:             {"cannot assign %s to %s", "convert the value or change the declared type"},
	ErrIncompatibleComparison:   {"incompatible comparison between %s and %s", "convert one side to match the other before comparing"},
	ErrReturnOutsideFunction:    {"redde used outside a function body", "move this return into a functio body"},
	ErrAwaitOutsideAsync:        {"expecta used outside an async context", "mark the enclosing functio async"},
	ErrBorrowedWithDefault:      {"borrowed parameter %q cannot have a default value", "remove the default or drop the de/in ownership preposition"},
	ErrRequiredAfterOptional:    {"required parameter %q follows an optional parameter", "reorder parameters so required ones come first"},
	ErrEmptyDiscretio:           {"discretio %q has no variants", "add at least one variant or remove the declaration"},
	ErrModuleNotFound:           {"module not found: %s", "check the import path is correct relative to this file"},
	ErrModuleParseFail:          {"failed to parse imported module %s", "fix the syntax errors reported for that file"},
	ErrUnsupportedConstruct:     {"unsupported construct for target %s: %s", "rewrite this construct, or accept the commented placeholder emitted in its place"},
}

// Diagnostic is a single compiler message: position + severity + stable code.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Help     string
	Position token.Position
	File     string
}

// New builds a Diagnostic from a catalog entry, formatting its template with
// args the way fmt.Sprintf would.
func New(code Code, pos token.Position, args ...interface{}) *Diagnostic {
	tpl, ok := templates[code]
	if !ok {
		return &Diagnostic{Code: code, Severity: SeverityError, Message: fmt.Sprint(args...), Position: pos}
	}
	return &Diagnostic{
		Code:     code,
		Severity: SeverityError,
		Message:  fmt.Sprintf(tpl.text, args...),
		Help:     tpl.help,
		Position: pos,
	}
}

// NewWarning is New but tagged as a warning severity.
func NewWarning(code Code, pos token.Position, args ...interface{}) *Diagnostic {
	d := New(code, pos, args...)
	d.Severity = SeverityWarning
	return d
}

func (d *Diagnostic) Error() string {
	return d.String()
}

// String renders "code: text\nhelp" at the position, per section 7.
func (d *Diagnostic) String() string {
	loc := fmt.Sprintf("%d:%d", d.Position.Line, d.Position.Column)
	if d.File != "" {
		loc = d.File + ":" + loc
	}
	s := fmt.Sprintf("%s: %s: %s", loc, d.Code, d.Message)
	if d.Help != "" {
		s += "\n  help: " + d.Help
	}
	return s
}

// Key is used to deduplicate diagnostics by position + code, matching the
// analyzer's accumulate-and-dedup discipline (section 4.2.6).
func (d *Diagnostic) Key() string {
	return fmt.Sprintf("%d:%d:%s", d.Position.Line, d.Position.Column, d.Code)
}
