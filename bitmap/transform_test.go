package bitmap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{name: "", want: "mono", wantOK: true},
		{name: "mono", want: "mono", wantOK: true},
		{name: "palette", want: "palette", wantOK: true},
		{name: "floyd-steinberg", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := Transform(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, fn)
				return
			}
			assert.NotNil(t, fn)
		})
	}
}

func TestAllTransforms(t *testing.T) {
	got := AllTransforms()
	assert.True(t, sort.StringsAreSorted(got))
	for _, name := range []string{"bayer", "checker", "mono", "palette", "random", "two-color"} {
		assert.Contains(t, got, name)
	}
}

func TestBuiltinTransforms_preserveBounds(t *testing.T) {
	src := Gradient(40, 10)
	p := DefaultParams()
	p.Noise = NewNoise(3)
	for _, name := range AllTransforms() {
		t.Run(name, func(t *testing.T) {
			fn, ok := Transform(name)
			require.True(t, ok)
			got, err := fn(src, p)
			require.NoError(t, err)
			assert.Equal(t, src.Bounds(), got.Bounds())
		})
	}
}

func TestBuiltinTransforms_matchFunctions(t *testing.T) {
	src := Gradient(40, 10)
	p := DefaultParams()
	p.Noise = NewNoise(11)
	p.Workers = 2

	run := func(name string) *Image {
		t.Helper()
		fn, ok := Transform(name)
		require.True(t, ok)
		got, err := fn(src, p)
		require.NoError(t, err)
		return got
	}
	assert.Equal(t, Threshold(src), run("mono"))
	assert.Equal(t, ThresholdColors(src, p.Low, p.High), run("two-color"))
	assert.Equal(t, RandomDither(src, NewNoise(11)), run("random"))
	assert.Equal(t, Checkerboard(src, White), run("checker"))
	assert.Equal(t, Ordered(src, DefaultOrderSize, 1.0), run("bayer"))
	wantPal, err := ApplyPalette(src, p.Palette)
	require.NoError(t, err)
	assert.Equal(t, wantPal, run("palette"))
}

func TestBuiltinTransforms_emptyPalette(t *testing.T) {
	fn, ok := Transform("palette")
	require.True(t, ok)
	got, err := fn(Gradient(4, 4), Params{})
	assert.ErrorIs(t, err, ErrEmptyPalette)
	assert.Nil(t, got)
}

func TestRegisterTransform(t *testing.T) {
	identity := func(src *Image, _ Params) (*Image, error) { return FromImage(src), nil }

	assert.Panics(t, func() { RegisterTransform("", identity) })
	assert.Panics(t, func() { RegisterTransform("identity", nil) })
	assert.Panics(t, func() { RegisterTransform("mono", identity) })

	RegisterTransform("identity", identity)
	t.Cleanup(func() { delete(transforms, "identity") })

	fn, ok := Transform("identity")
	require.True(t, ok)
	src := Gradient(5, 5)
	got, err := fn(src, Params{})
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, Pixel{0, 128, 255}, p.Low)
	assert.Equal(t, Pixel{255, 255, 0}, p.High)
	assert.Len(t, p.Palette, 8)
	assert.NotNil(t, p.Noise)
	assert.Equal(t, DefaultOrderSize, p.OrderSize)
	assert.Equal(t, float32(1.0), p.Strength)
}

func TestIsDither(t *testing.T) {
	assert.True(t, IsDither("random"))
	assert.True(t, IsDither("bayer"))
	assert.False(t, IsDither("mono"))
	assert.False(t, IsDither("palette"))
}
