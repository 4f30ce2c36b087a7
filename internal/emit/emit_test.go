package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/framegrid/internal/config"
	"github.com/backmassage/framegrid/internal/document"
)

func emitConfig(dir string) *config.EmitConfig {
	cfg := config.DefaultConfig().Emit
	cfg.Template = "t=$tick p=$position c=$color"
	cfg.OutputDir = dir
	return &cfg
}

func twoFrameDoc() *document.Document {
	return &document.Document{Rows: 2, Columns: 2, Frames: []document.Frame{
		{FrameIndex: 0, Grid: [][]string{{"#FFFFFF", "#123456"}, {"#000000", ""}}},
		{FrameIndex: 4, Grid: [][]string{{"#FFFFFF", "#FFFFFF"}, {"#010101", ""}}},
	}}
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, "FFF", Collapse("#FFFFFF"))
	assert.Equal(t, "000", Collapse("#000000"))
	assert.Equal(t, "000", Collapse("#FFFFFE"))
	assert.Equal(t, "000", Collapse("#ffffff"))
}

func TestExpand(t *testing.T) {
	assert.Equal(t,
		"execute if score #global timer matches 3 run waypoint modify @e[tag=pos_1,limit=1] color hex FFF",
		Expand(config.DefaultTemplate, 3, 1, "FFF"))
}

func TestRender(t *testing.T) {
	lines := Render(twoFrameDoc(), emitConfig(""))

	assert.Equal(t, []string{
		"t=1 p=0 c=FFF",
		"t=1 p=1 c=000",
		"t=5 p=1 c=FFF",
		"t=6 p=0 c=0F0",
		"t=6 p=1 c=0F0",
	}, lines[0])

	// #000000 -> #010101 is a change even though both collapse to 000;
	// empty cells never emit.
	assert.Equal(t, []string{
		"t=1 p=0 c=000",
		"t=5 p=0 c=000",
		"t=6 p=0 c=0F0",
		"t=6 p=1 c=0F0",
	}, lines[1])
}

func TestRender_UnchangedCellsEmitOnce(t *testing.T) {
	d := &document.Document{Rows: 1, Columns: 1}
	for i := 0; i < 5; i++ {
		d.Frames = append(d.Frames, document.Frame{FrameIndex: i * 10, Grid: [][]string{{"#000000"}}})
	}
	lines := Render(d, emitConfig(""))
	assert.Equal(t, []string{"t=1 p=0 c=000", "t=42 p=0 c=0F0"}, lines[0])
}

func TestRender_NoFrames(t *testing.T) {
	lines := Render(&document.Document{Rows: 3, Columns: 2, Frames: []document.Frame{}}, emitConfig(""))
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Empty(t, l)
	}
}

func TestEmit_WritesRowFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lines")
	cfg := emitConfig(dir)

	res, err := Emit(twoFrameDoc(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4}, res.Lines)
	assert.Equal(t, 9, res.Total())
	assert.Equal(t, []string{filepath.Join(dir, "line_1.mcfunction"), filepath.Join(dir, "line_2.mcfunction")}, res.Files)

	data, err := os.ReadFile(res.Files[0])
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(string(data), "\n"))
	assert.True(t, strings.HasPrefix(string(data), "t=1 p=0 c=FFF\n"))
	assert.Positive(t, res.Bytes)
}

func TestEmit_TruncateAndAppend(t *testing.T) {
	dir := t.TempDir()
	cfg := emitConfig(dir)
	path := filepath.Join(dir, FileName(cfg, 0))

	_, err := Emit(twoFrameDoc(), cfg)
	require.NoError(t, err)
	_, err = Emit(twoFrameDoc(), cfg)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(string(data), "\n"), "second run truncates")

	cfg.Append = true
	_, err = Emit(twoFrameDoc(), cfg)
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(string(data), "\n"), "append keeps earlier lines")
}

func TestEmit_CustomNames(t *testing.T) {
	dir := t.TempDir()
	cfg := emitConfig(dir)
	cfg.Prefix, cfg.Ext = "row", ".txt"

	res, err := Emit(twoFrameDoc(), cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "row1.txt"), res.Files[0])
}

func TestEmit_NoFramesWritesNothing(t *testing.T) {
	dir := t.TempDir()
	res, err := Emit(&document.Document{Rows: 2, Columns: 2, Frames: []document.Frame{}}, emitConfig(dir))
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.Equal(t, 0, res.Total())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
