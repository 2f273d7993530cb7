// Package testutil provides golden-fixture helpers for per-target codegen
// tests (SPEC_FULL.md 1.1/1.2): one txtar archive per fixture, bundling the
// Faber source alongside the expected output for every target that cares
// about it, grounded on golang.org/x/tools/txtar's own "multiple named
// files in one text blob" idiom (used upstream for go/packages-adjacent
// testing, the same job it does here for a compiler's golden files).
package testutil

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/tools/txtar"
)

// Fixture is one parsed golden-file archive: the Faber source under the
// "input.fab" section, plus every other named section keyed by its archive
// file name (conventionally a target name: "cpp", "rust", "typescript",
// "python", "zig").
type Fixture struct {
	Name    string
	Input   string
	Targets map[string]string
}

// LoadFixture reads and parses a txtar archive from path.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testutil: reading fixture %s: %w", path, err)
	}
	return ParseFixture(path, data)
}

// ParseFixture parses txtar-formatted data into a Fixture. name is used
// only for error messages (typically the source path).
func ParseFixture(name string, data []byte) (*Fixture, error) {
	archive := txtar.Parse(data)
	f := &Fixture{Name: name, Targets: make(map[string]string)}
	found := false
	for _, file := range archive.Files {
		if file.Name == "input.fab" {
			f.Input = string(file.Data)
			found = true
			continue
		}
		f.Targets[file.Name] = string(file.Data)
	}
	if !found {
		return nil, fmt.Errorf("testutil: fixture %s has no \"input.fab\" section", name)
	}
	return f, nil
}

// Expect returns the non-blank lines of the fixture's "expect" section: the
// identifiers every target's generated output is expected to carry through
// verbatim, used by per-target codegen tests as a lighter-weight substitute
// for an exact-byte-match golden comparison (section 4.3's per-target
// formatting differs enough between targets that byte-identical goldens
// would just encode incidental whitespace choices).
func (f *Fixture) Expect() []string {
	var lines []string
	for _, line := range strings.Split(f.Targets["expect"], "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Format re-renders a Fixture back into txtar form: the "input.fab" section
// first, then every other section in name order.
func Format(f *Fixture) []byte {
	archive := &txtar.Archive{}
	archive.Files = append(archive.Files, txtar.File{Name: "input.fab", Data: []byte(f.Input)})
	for _, name := range sortedKeys(f.Targets) {
		archive.Files = append(archive.Files, txtar.File{Name: name, Data: []byte(f.Targets[name])})
	}
	return txtar.Format(archive)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
