package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/faber/internal/codegen"
)

const sampleSource = `functio adde(a: Numerus, b: Numerus) -> Numerus {
	redde a + b
}
fixum x: Numerus = adde(1, 2)
`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.fab")
	require.NoError(t, os.WriteFile(path, []byte(sampleSource), 0644))
	return path
}

func TestRunPipelineCompilesToCPP(t *testing.T) {
	path := writeSample(t)
	ctx, err := runPipeline(path, "cpp")
	require.NoError(t, err)
	require.False(t, ctx.HasErrors(), "diagnostics: %v", ctx.Diagnostics)
	require.Contains(t, ctx.Output, "adde")
}

func TestRunPipelineCheckOnlyProducesNoOutput(t *testing.T) {
	path := writeSample(t)
	ctx, err := runPipeline(path, "")
	require.NoError(t, err)
	require.False(t, ctx.HasErrors())
	require.Empty(t, ctx.Output)
}

func TestHandleCompileUnknownTarget(t *testing.T) {
	path := writeSample(t)
	code := handleCompile([]string{path, "-t", "cobol"})
	require.Equal(t, 2, code)
}

func TestHandleCompileWritesOutputFile(t *testing.T) {
	path := writeSample(t)
	out := filepath.Join(filepath.Dir(path), "sample.rs")
	code := handleCompile([]string{path, "-t", "rust", "-o", out})
	require.Equal(t, 0, code)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "adde")
}

func TestHandleCheckReportsSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.fab")
	require.NoError(t, os.WriteFile(path, []byte("functio ("), 0644))
	code := handleCheck([]string{path})
	require.Equal(t, 1, code)
}

func TestDefaultOutputPathUsesTargetExtension(t *testing.T) {
	got := defaultOutputPath("/x/y/sample.fab", codegen.Python, "")
	require.Equal(t, "/x/y/sample.python.py", got)
}
