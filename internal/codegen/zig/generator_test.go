package zig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/faber/internal/testutil"
)

func TestGenerateFixtures(t *testing.T) {
	fixtures := []string{
		"../testdata/basic_function.txtar",
		"../testdata/discretio_variant.txtar",
	}

	for _, path := range fixtures {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			fixture, err := testutil.LoadFixture(path)
			require.NoError(t, err)

			prog, diags := testutil.Analyze(fixture.Input)
			require.Empty(t, diags, "fixture should analyze cleanly")

			source, _, genDiags := New().Generate(prog)
			require.Empty(t, genDiags)
			for _, want := range fixture.Expect() {
				require.Contains(t, source, want)
			}
		})
	}
}
