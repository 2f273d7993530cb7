// Package tests holds end-to-end, fixture-driven compiles: each fixture is
// a real .fab file on disk run through a freshly built faberc binary, the
// way the teacher's own tests/functional_test.go drives cmd/funxy rather
// than calling internal packages directly — this is what a user actually
// sees.
package tests

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildBinary compiles cmd/faberc once per test run and returns its path,
// removing it on test completion.
func buildBinary(t *testing.T) string {
	t.Helper()
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	binaryPath := filepath.Join(t.TempDir(), "faberc-test-binary")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/faberc")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build faberc: %v\n%s", err, output)
	}
	return binaryPath
}

// TestCompileFixtures walks tests/fixtures for <name>/main.fab +
// <name>/expect.<target>.txt pairs, compiles main.fab to every target that
// has an expect file, and asserts the generated output carries every
// expected identifier (not a byte-exact golden: formatting differs enough
// per target that an exact match would just pin incidental whitespace).
func TestCompileFixtures(t *testing.T) {
	binary := buildBinary(t)

	fixtureDirs, err := filepath.Glob("fixtures/*")
	if err != nil {
		t.Fatalf("failed to glob fixtures: %v", err)
	}
	if len(fixtureDirs) == 0 {
		t.Skip("no fixtures found")
	}

	for _, dir := range fixtureDirs {
		dir := dir
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		name := filepath.Base(dir)

		sourcePath := filepath.Join(dir, "main.fab")
		if _, err := os.Stat(sourcePath); err != nil {
			continue
		}

		expectFiles, err := filepath.Glob(filepath.Join(dir, "expect.*.txt"))
		if err != nil {
			t.Fatalf("failed to glob expect files in %s: %v", dir, err)
		}

		for _, expectPath := range expectFiles {
			expectPath := expectPath
			target := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(expectPath), "expect."), ".txt")

			t.Run(name+"/"+target, func(t *testing.T) {
				outDir := t.TempDir()
				outPath := filepath.Join(outDir, "out")

				cmd := exec.Command(binary, "compile", sourcePath, "-t", target, "-o", outPath)
				out, runErr := cmd.CombinedOutput()
				if runErr != nil {
					t.Fatalf("compile failed: %v\n%s", runErr, out)
				}

				generated, err := os.ReadFile(outPath)
				if err != nil {
					t.Fatalf("reading generated output: %v", err)
				}

				wantBytes, err := os.ReadFile(expectPath)
				if err != nil {
					t.Fatalf("reading %s: %v", expectPath, err)
				}
				for _, line := range strings.Split(string(wantBytes), "\n") {
					line = strings.TrimSpace(line)
					if line == "" {
						continue
					}
					if !strings.Contains(string(generated), line) {
						t.Errorf("generated %s output missing %q\n--- got ---\n%s", target, line, generated)
					}
				}
			})
		}
	}
}

// TestCheckRejectsInvalidPrograms runs faberc check over every
// tests/fixtures/invalid/*.fab file, asserting a nonzero exit and
// non-empty diagnostic output.
func TestCheckRejectsInvalidPrograms(t *testing.T) {
	binary := buildBinary(t)

	invalidFiles, err := filepath.Glob("fixtures/invalid/*.fab")
	if err != nil {
		t.Fatalf("failed to glob invalid fixtures: %v", err)
	}
	if len(invalidFiles) == 0 {
		t.Skip("no invalid fixtures found")
	}

	for _, path := range invalidFiles {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			cmd := exec.Command(binary, "check", path)
			out, err := cmd.CombinedOutput()
			if err == nil {
				t.Fatalf("expected faberc check to fail for %s, got:\n%s", path, out)
			}
			if len(out) == 0 {
				t.Fatalf("expected a diagnostic on stderr for %s", path)
			}
		})
	}
}

// TestTargetsListsEveryRegisteredBackend checks the registry wired up via
// the codegen subpackages' blank imports in pkg/cli surfaces through the
// "targets" subcommand.
func TestTargetsListsEveryRegisteredBackend(t *testing.T) {
	binary := buildBinary(t)

	cmd := exec.Command(binary, "targets")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("faberc targets failed: %v\n%s", err, out)
	}

	for _, want := range []string{"cpp", "rust", "typescript", "python", "zig"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("faberc targets output missing %q:\n%s", want, out)
		}
	}
}
