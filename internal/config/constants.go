// Package config holds the compiler's small named constant tables: version,
// recognized source extensions, and built-in names. Faber follows the
// teacher's convention of plain package-level tables here rather than a
// generic settings struct — most of these values are compiled-in surface,
// not user-configurable.
package config

// Version is the current Faber compiler version.
var Version = "0.1.0"

const SourceFileExt = ".fab"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".fab", ".faber"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source
// extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode is set when the program runs under `faberc check
// --test-mode`. No stage reads it; the CLI prints diagnostics sorted by
// file, line and column in every mode.
var IsTestMode = false

// StandardLibraryRoot is the module path recognized by import resolution
// (section 4.2.5) as the standard-library root.
const StandardLibraryRoot = "faber/std"

// StandardLibraryModules are the recognized standard-library submodules.
var StandardLibraryModules = []string{"io", "collections", "text", "math", "time"}

// Built-in intrinsic function names (section 6.5 I/O surface plus common
// utility intrinsics every target maps to a fixed expression, section 4.3.3).
const (
	PrintFuncName   = "scribe"
	DebugFuncName   = "vide"
	WarnFuncName    = "mone"
	ReadFuncName    = "lege"
	LenFuncName     = "longitudo"
	TypeOfFuncName  = "genusDe"
	DefaultFuncName = "praedefinitum"
)

// Built-in type names (section 4.2.2 known generics, plus scalar primitives).
const (
	ListTypeName     = "List"
	MapTypeName      = "Map"
	SetTypeName      = "Set"
	PromiseTypeName  = "Promise"
	IteratorTypeName = "Iterator"
	StreamTypeName   = "Stream"

	NumerusTypeName  = "numerus"
	TextusTypeName   = "textus"
	BivalensTypeName = "bivalens"
	FractusTypeName  = "fractus"
	NihilTypeName    = "nihil"
)

// KnownGenerics are the names that resolve to a Generic semantic type
// (section 4.2.2) rather than a primitive or user type.
var KnownGenerics = map[string]bool{
	ListTypeName: true, MapTypeName: true, SetTypeName: true,
	PromiseTypeName: true, IteratorTypeName: true, StreamTypeName: true,
}

// KnownPrimitives is the set of recognized primitive type names.
var KnownPrimitives = map[string]bool{
	NumerusTypeName: true, TextusTypeName: true, BivalensTypeName: true,
	FractusTypeName: true, NihilTypeName: true,
}
