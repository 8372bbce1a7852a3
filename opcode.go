package nyan2zop

import (
	"fmt"
	"io"
)

// An Opcode is one instruction of the emitted stream. Each variant serializes
// to a single ZOP line of the zwreec easter-egg source via String.
type Opcode interface {
	fmt.Stringer
}

// SetTextStyle sets the interpreter's text rendering style.
type SetTextStyle struct {
	Bold      bool
	Reverse   bool
	Monospace bool
	Italic    bool
}

func (o SetTextStyle) String() string {
	return fmt.Sprintf("ZOP::SetTextStyle{bold: %t, reverse: %t, monospace: %t, italic: %t},", o.Bold, o.Reverse, o.Monospace, o.Italic)
}

// SetColor switches foreground and background to a ZColor. The art draws with
// colored blocks, so both are always set to the same code.
type SetColor struct {
	Foreground ZColor
	Background ZColor
}

func (o SetColor) String() string {
	return fmt.Sprintf("ZOP::SetColor{foreground: %d, background: %d},", o.Foreground, o.Background)
}

// PrintOps prints a run of text in the current style and color.
type PrintOps struct {
	Text string
}

func (o PrintOps) String() string {
	return `ZOP::PrintOps{text: "` + o.Text + `".to_string()},`
}

// Newline advances the interpreter's cursor to the next line.
type Newline struct{}

func (o Newline) String() string {
	return "ZOP::Newline,"
}

// Routine declares a named routine with a fixed number of local variables.
type Routine struct {
	Name           string
	CountVariables int
}

func (o Routine) String() string {
	return fmt.Sprintf("ZOP::Routine{name: %q.to_string(), count_variables: %d},", o.Name, o.CountVariables)
}

// Ret returns from the current routine with a constant value.
type Ret struct {
	Value int
}

func (o Ret) String() string {
	return fmt.Sprintf("ZOP::Ret{value: Operand::new_const(%d)},", o.Value)
}

// A Program is an ordered opcode sequence.
type Program []Opcode

// WriteTo serializes the program one opcode per line.
func (p Program) WriteTo(w io.Writer) (n int64, err error) {
	for _, op := range p {
		m, err := fmt.Fprintln(w, op)
		n += int64(m)
		if err != nil {
			return n, fmt.Errorf("write opcode %q failed: %w", op, err)
		}
	}
	return n, nil
}
