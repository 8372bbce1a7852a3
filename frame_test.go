package nyan2zop

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedFrame(id, numLines int) Frame {
	lines := make([]string, numLines)
	for i := range lines {
		lines[i] = fmt.Sprintf("line%d", i)
	}
	return Frame{ID: id, Lines: lines}
}

func TestStrip(t *testing.T) {
	t.Parallel()
	f, err := numberedFrame(1, 70).Strip()
	require.Nil(t, err)
	// indices 0-19 and 47-63 are gone, 20-46 and 64-69 survive.
	require.Len(t, f.Lines, 27+6)
	assert.Equal(t, "line20", f.Lines[0])
	assert.Equal(t, "line46", f.Lines[26])
	assert.Equal(t, "line64", f.Lines[27])
	assert.Equal(t, "line69", f.Lines[32])
	for _, line := range f.Lines {
		i := 0
		fmt.Sscanf(line, "line%d", &i)
		assert.True(t, (i >= 20 && i <= 46) || i >= 64, "unexpected survivor %q", line)
	}
}

func TestStripExactMinimum(t *testing.T) {
	t.Parallel()
	f, err := numberedFrame(1, MinFrameLines).Strip()
	require.Nil(t, err)
	assert.Len(t, f.Lines, 27)
}

func TestStripTooShort(t *testing.T) {
	t.Parallel()
	_, err := numberedFrame(3, 63).Strip()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "frame 3 too short")
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	type tc struct {
		line string
		want string
	}
	testCases := []tc{
		{"##+##", "oo+oo"},
		{`a"b"c`, "abc"},
		{`",x",`, ",x,"},
		{"#\"#", "oo"},
		{"...", "..."},
	}
	for _, c := range testCases {
		assert.Equal(t, c.want, normalize(c.line))
	}
}

func TestReadFrame(t *testing.T) {
	t.Parallel()
	f, err := ReadFrame(strings.NewReader("a\nb\nc\n"), 7)
	require.Nil(t, err)
	assert.Equal(t, 7, f.ID)
	assert.Equal(t, []string{"a", "b", "c"}, f.Lines)
}
