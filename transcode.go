package nyan2zop

import (
	"strings"
	"unicode/utf8"
)

// charSentinel seeds the previous-character tracking once per frame. It must
// never be a glyph of the color table.
const charSentinel = '0'

// A transcoder accumulates the opcode program of a single frame. The last
// emitted SetColor lives here so identical color changes are suppressed for
// the lifetime of one frame only.
type transcoder struct {
	ops       Program
	text      strings.Builder
	lastColor SetColor
	last      rune
}

// Transcode converts the frame's lines into an opcode program: a fixed text
// style, then per line the print and color-change opcodes followed by a
// Newline. Call Strip first, Transcode scans whatever lines it is given.
func (f Frame) Transcode() Program {
	t := &transcoder{last: charSentinel}
	t.ops = append(t.ops, SetTextStyle{Bold: true, Monospace: true})
	for _, line := range f.Lines {
		line = normalize(line)
		if line == "" {
			t.newline()
			continue
		}
		// The first glyph of a line always gets the color rule applied,
		// even when it repeats the previous line's last glyph.
		first, _ := utf8.DecodeRuneInString(line)
		t.setColor(first)
		for _, ch := range line {
			if ch != t.last {
				t.setColor(ch)
			}
			t.print(ch)
			t.last = ch
		}
		t.newline()
	}
	t.flush()
	return t.ops
}

// setColor emits the color change for ch unless ch has no color bucket or the
// change would repeat the last one emitted.
func (t *transcoder) setColor(ch rune) {
	col, ok := ColorCode(ch)
	if !ok {
		return
	}
	op := SetColor{Foreground: col, Background: col}
	if op == t.lastColor {
		return
	}
	t.flush()
	t.ops = append(t.ops, op)
	t.lastColor = op
}

// print appends ch to the pending print text, escaping the quote for the
// target literal syntax.
func (t *transcoder) print(ch rune) {
	if ch == '\'' {
		t.text.WriteString(`\'`)
		return
	}
	t.text.WriteRune(ch)
}

func (t *transcoder) newline() {
	t.flush()
	t.ops = append(t.ops, Newline{})
}

// flush terminates the pending print text. Empty prints are never emitted,
// which keeps empty PrintOps away from Newline boundaries.
func (t *transcoder) flush() {
	if t.text.Len() == 0 {
		return
	}
	t.ops = append(t.ops, PrintOps{Text: t.text.String()})
	t.text.Reset()
}
