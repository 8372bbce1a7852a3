// Package nyan2zop transcodes the nyancat ascii-art frames into the ZOP
// opcode source of the zwreec easter-egg animation. Each frame becomes a
// routine nyanpr<N> printing the art in z-machine colors, with redundant
// color changes suppressed.
package nyan2zop

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
)

const Version = "1.1"

// Defaults of the frame set, matching the original art drop.
const (
	DefaultFramesDir  = "frames"
	DefaultFrameCount = 12
	DefaultFrameDelay = 6

	routinePrefix  = "nyanpr"
	routineNumVars = 1
)

// Options control conversion and playback, usually filled by the cli flags.
type Options struct {
	OutFile    string
	TargetDir  string
	FramesDir  string
	FrameCount int
	FrameDelay int
	Quiet      bool
	Verbose    bool
}

// A Converter holds the loaded frames and writes the opcode stream.
type Converter struct {
	opt    Options
	frames []Frame
}

// New returns a Converter for the given frames.
func New(opt Options, frames ...Frame) *Converter {
	return &Converter{opt: opt, frames: frames}
}

// NewFromPath loads frame1.txt up to frame<FrameCount>.txt from FramesDir and
// returns a Converter for them. Every frame file must exist.
func NewFromPath(opt Options) (*Converter, error) {
	dir := opt.FramesDir
	if dir == "" {
		dir = DefaultFramesDir
	}
	count := opt.FrameCount
	if count == 0 {
		count = DefaultFrameCount
	}
	frames := make([]Frame, 0, count)
	for n := 1; n <= count; n++ {
		path := filepath.Join(dir, fmt.Sprintf("frame%d.txt", n))
		f, err := FrameFromPath(path, n)
		if err != nil {
			return nil, fmt.Errorf("FrameFromPath %q failed: %w", path, err)
		}
		if opt.Verbose {
			log.Printf("loaded frame %d: %q (%d lines)", n, path, len(f.Lines))
		}
		frames = append(frames, f)
	}
	return New(opt, frames...), nil
}

// Frames returns the loaded frames in order.
func (c *Converter) Frames() []Frame {
	return c.frames
}

// Program strips and transcodes all frames into one opcode program, each
// frame wrapped in its routine declaration and a Ret 0.
func (c *Converter) Program() (Program, error) {
	var p Program
	for _, f := range c.frames {
		stripped, err := f.Strip()
		if err != nil {
			return nil, fmt.Errorf("Strip frame %d failed: %w", f.ID, err)
		}
		p = append(p, Routine{Name: fmt.Sprintf("%s%d", routinePrefix, f.ID), CountVariables: routineNumVars})
		p = append(p, stripped.Transcode()...)
		p = append(p, Ret{Value: 0})
	}
	return p, nil
}

// WriteTo serializes the full opcode stream to w, implementing io.WriterTo.
// Either all frames are written in order or an error is returned.
func (c *Converter) WriteTo(w io.Writer) (int64, error) {
	p, err := c.Program()
	if err != nil {
		return 0, err
	}
	return p.WriteTo(w)
}

// DestinationFilename returns TargetDir/OutFile. Empty means stdout and is
// left for the caller to handle.
func DestinationFilename(opt Options) string {
	if opt.OutFile == "" {
		return ""
	}
	if opt.TargetDir == "" {
		return opt.OutFile
	}
	return filepath.Join(opt.TargetDir, opt.OutFile)
}
