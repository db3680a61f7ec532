package cmdpattern

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/tpimage/bitmap"
	"github.com/rusq/tpimage/cmd/tpi/internal/bootstrap"
)

func Test_runPattern(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	width, height = 16, 4
	t.Cleanup(func() { width, height = 384, 192 })

	for _, name := range bitmap.AllPatterns() {
		output := filepath.Join(dir, name+".png")
		require.NoError(t, runPattern(ctx, CmdPattern, []string{name, output}), name)
		got, err := bootstrap.Load(ctx, output)
		require.NoError(t, err)
		assert.Equal(t, bitmap.Patterns[name](16, 4), got, name)
	}

	assert.Error(t, runPattern(ctx, CmdPattern, []string{"nope", filepath.Join(dir, "x.png")}))
	assert.Error(t, runPattern(ctx, CmdPattern, []string{"gradient"}))
}

func Test_listPatterns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listPatterns(&buf))
	for _, name := range bitmap.AllPatterns() {
		assert.Contains(t, buf.String(), name)
	}
}
