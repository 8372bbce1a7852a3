package nyan2zop

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFrameLines returns a well-formed frame source: 20 header lines, 27
// lines of art, 17 footer lines.
func testFrameLines(id int) []string {
	lines := make([]string, 0, MinFrameLines)
	for i := 0; i < 20; i++ {
		lines = append(lines, fmt.Sprintf("header %d", i))
	}
	art := []string{
		",,,,,,,,,,,,,,,,,,,,",
		",----------------,,,",
		",-%%$$%%$$%%$$%%-,,,",
		fmt.Sprintf(",-%%#o@oo#oo@o#%d-,,*", id),
		",-%$@''@$$@''@$%-,>>",
		",----------------,==",
		"....&&....&&........",
	}
	for len(lines) < footerStart {
		lines = append(lines, art[len(lines)%len(art)])
	}
	for i := footerStart; i <= footerEnd; i++ {
		lines = append(lines, fmt.Sprintf("footer %d", i))
	}
	return lines
}

func writeTestFrames(t *testing.T, dir string, count int) {
	t.Helper()
	for n := 1; n <= count; n++ {
		path := filepath.Join(dir, fmt.Sprintf("frame%d.txt", n))
		data := strings.Join(testFrameLines(n), "\n") + "\n"
		require.Nil(t, os.WriteFile(path, []byte(data), 0644))
	}
}

func TestNewFromPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeTestFrames(t, dir, DefaultFrameCount)
	opt := Options{FramesDir: dir, Quiet: true}
	c, err := NewFromPath(opt)
	require.Nil(t, err)
	require.Len(t, c.Frames(), DefaultFrameCount)
	assert.Equal(t, 1, c.Frames()[0].ID)
	assert.Equal(t, 12, c.Frames()[11].ID)
}

func TestNewFromPathMissingFrame(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeTestFrames(t, dir, 11)
	opt := Options{FramesDir: dir, Quiet: true}
	_, err := NewFromPath(opt)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "frame12.txt")
}

func TestConverterWriteTo(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeTestFrames(t, dir, DefaultFrameCount)
	opt := Options{FramesDir: dir, Quiet: true}
	c, err := NewFromPath(opt)
	require.Nil(t, err)

	buf := &bytes.Buffer{}
	n, err := c.WriteTo(buf)
	require.Nil(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	assert.Equal(t, 12, strings.Count(out, "ZOP::Routine{"))
	assert.Equal(t, 12, strings.Count(out, "ZOP::Ret{value: Operand::new_const(0)},"))
	assert.Equal(t, 12, strings.Count(out, "ZOP::SetTextStyle{bold: true, reverse: false, monospace: true, italic: false},"))
	assert.NotContains(t, out, `ZOP::PrintOps{text: "".to_string()},`)
	assert.NotContains(t, out, "header")
	assert.NotContains(t, out, "footer")
	assert.NotContains(t, out, "#")

	// routines appear in frame order 1 through 12, no gaps.
	prev := -1
	for num := 1; num <= 12; num++ {
		decl := fmt.Sprintf("ZOP::Routine{name: %q.to_string(), count_variables: 1},", fmt.Sprintf("nyanpr%d", num))
		i := strings.Index(out, decl)
		require.NotEqual(t, -1, i, "missing routine %d", num)
		assert.Greater(t, i, prev)
		prev = i
	}
}

func TestConverterWriteToShortFrame(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeTestFrames(t, dir, 2)
	path := filepath.Join(dir, "frame2.txt")
	require.Nil(t, os.WriteFile(path, []byte("too\nshort\n"), 0644))
	opt := Options{FramesDir: dir, FrameCount: 2, Quiet: true}
	c, err := NewFromPath(opt)
	require.Nil(t, err)
	_, err = c.WriteTo(&bytes.Buffer{})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "frame 2 too short")
}

func TestDestinationFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", DestinationFilename(Options{TargetDir: "t"}))
	assert.Equal(t, "out.rs", DestinationFilename(Options{OutFile: "out.rs"}))
	assert.Equal(t, filepath.Join("t", "out.rs"), DestinationFilename(Options{OutFile: "out.rs", TargetDir: "t"}))
}

func BenchmarkConverterWriteTo(b *testing.B) {
	dir := b.TempDir()
	for n := 1; n <= DefaultFrameCount; n++ {
		path := filepath.Join(dir, fmt.Sprintf("frame%d.txt", n))
		data := strings.Join(testFrameLines(n), "\n") + "\n"
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			b.Fatalf("os.WriteFile %q failed: %v", path, err)
		}
	}
	opt := Options{FramesDir: dir, Quiet: true}
	for i := 0; i < b.N; i++ {
		buf := &bytes.Buffer{}
		c, err := NewFromPath(opt)
		if err != nil {
			b.Fatalf("NewFromPath failed: %v", err)
		}
		if _, err = c.WriteTo(buf); err != nil {
			b.Fatalf("WriteTo failed: %v", err)
		}
	}
}
