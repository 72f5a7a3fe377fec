package svgdriver

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/svgchart/svggeom"
	"github.com/benoitkugler/svgchart/svgpaint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := ParseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(`
width = 800
id_prefix = "sales"
offset = [10, 20]
auto_shorten_string = false
shade_circular_arc = 0

[font]
name = "serif"
color = "#f00"
background = "#00ff0080"
padding = 2
`))
	require.NoError(t, err)

	assert.Equal(t, 800.0, opts.Width)
	assert.Equal(t, 300.0, opts.Height)
	assert.Equal(t, "sales", opts.IDPrefix)
	assert.Equal(t, svggeom.Pt(10, 20), opts.Offset)
	assert.False(t, opts.AutoShortenString)
	assert.Equal(t, "..", opts.AutoShortenMarker)
	assert.Zero(t, opts.ShadeCircularArc)

	assert.Equal(t, "serif", opts.Font.Name)
	assert.Equal(t, 96.0, opts.Font.MaxSize)
	assert.Equal(t, svgpaint.NewPlainColor(0xff, 0, 0, 0xff), opts.Font.Color)
	assert.Equal(t, svgpaint.NewPlainColor(0, 0xff, 0, 0x80), opts.Font.Background)
	assert.Nil(t, opts.Font.Border)
	assert.Equal(t, 2.0, opts.Font.BoxPadding())
}

func TestParseOptionsInvalid(t *testing.T) {
	for _, data := range []string{
		`unknown = 1`,
		"[font]\nsize = 12",
		`width = "large"`,
		"[font]\ncolor = \"red\"",
		`width = `,
	} {
		_, err := ParseOptions([]byte(data))
		assert.Error(t, err, data)
	}
}

func TestLoadOptions(t *testing.T) {
	file := filepath.Join(t.TempDir(), "options.toml")
	require.NoError(t, os.WriteFile(file, []byte("insert_into_group = \"plot\"\n"), 0o644))
	opts, err := LoadOptions(file)
	require.NoError(t, err)
	assert.Equal(t, "plot", opts.InsertIntoGroup)

	_, err = LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSetLogger(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := New(DefaultOptions()).DrawPolygon(square(0, 0, 1, 1), red, false, 4)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "polygon too small")
}
