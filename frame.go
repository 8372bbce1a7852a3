package nyan2zop

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// The frame sources carry fixed boilerplate around the art: a header block at
// lines 0-19 and a footer block at lines 47-63, both 0-based and inclusive.
// The ranges come straight from the art files and carry no deeper meaning.
const (
	headerStart = 0
	headerEnd   = 19
	footerStart = 47
	footerEnd   = 63

	// MinFrameLines is the shortest frame Strip accepts.
	MinFrameLines = footerEnd + 1
)

// A Frame is one ascii-art animation cell, read from frame<ID>.txt.
type Frame struct {
	ID    int
	Lines []string
}

// FrameFromPath reads the frame file at path.
func FrameFromPath(path string, id int) (Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return Frame{}, fmt.Errorf("os.Open %q failed: %w", path, err)
	}
	defer f.Close()
	frame, err := ReadFrame(f, id)
	if err != nil {
		return Frame{}, fmt.Errorf("ReadFrame %q failed: %w", path, err)
	}
	return frame, nil
}

// ReadFrame reads all lines of r into a Frame.
func ReadFrame(r io.Reader, id int) (Frame, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Frame{}, fmt.Errorf("scan failed: %w", err)
	}
	return Frame{ID: id, Lines: lines}, nil
}

// Strip returns the frame without its header and footer boilerplate.
// Frames shorter than MinFrameLines are rejected.
func (f Frame) Strip() (Frame, error) {
	if len(f.Lines) < MinFrameLines {
		return Frame{}, fmt.Errorf("frame %d too short: %d lines, need at least %d", f.ID, len(f.Lines), MinFrameLines)
	}
	kept := make([]string, 0, len(f.Lines)-(headerEnd-headerStart+1)-(footerEnd-footerStart+1))
	kept = append(kept, f.Lines[headerEnd+1:footerStart]...)
	kept = append(kept, f.Lines[footerEnd+1:]...)
	return Frame{ID: f.ID, Lines: kept}, nil
}

// Normalized returns the frame's lines after normalization.
func (f Frame) Normalized() []string {
	lines := make([]string, len(f.Lines))
	for i, line := range f.Lines {
		lines[i] = normalize(line)
	}
	return lines
}

// normalize folds # into the o color bucket and drops quotes so a line can
// live inside a quoted text literal. The quote-comma removal is kept in the
// original order even though it is shadowed by the plain quote removal.
func normalize(line string) string {
	line = strings.ReplaceAll(line, "#", "o")
	line = strings.ReplaceAll(line, `"`, "")
	line = strings.ReplaceAll(line, `",`, "")
	return line
}
