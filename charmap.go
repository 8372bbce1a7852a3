package nyan2zop

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// A ZColor is a z-machine color code, 2 is black, 3 red, 4 green, ...
type ZColor byte

// MinColor and MaxColor bound the color codes the art uses.
const (
	MinColor ZColor = 2
	MaxColor ZColor = 10
)

func (c ZColor) String() string {
	switch c {
	case 2:
		return "black"
	case 3:
		return "red"
	case 4:
		return "green"
	case 5:
		return "yellow"
	case 6:
		return "blue"
	case 7:
		return "magenta"
	case 8:
		return "cyan"
	case 9:
		return "white"
	case 10:
		return "grey"
	default:
		return "unknown color"
	}
}

//go:embed "charmap.yaml"
var charmapYaml []byte

var charmap map[rune]ZColor

func init() {
	var err error
	charmap, err = convertCharmap(charmapYaml)
	if err != nil {
		panic(fmt.Errorf("convertCharmap failed: %w", err))
	}
	if len(charmap) == 0 {
		panic(fmt.Errorf("no symbols found in %q", "charmap.yaml"))
	}
}

// ColorCode returns the ZColor mapped to ch. ok is false for glyphs outside
// the table, those print in whatever color is current.
func ColorCode(ch rune) (col ZColor, ok bool) {
	col, ok = charmap[ch]
	return col, ok
}

// convertCharmap parses inputYaml and returns the symbol to color lookup.
func convertCharmap(inputYaml []byte) (map[rune]ZColor, error) {
	type bucketYaml struct {
		Color   byte
		Symbols string
	}
	var bb []bucketYaml
	if err := yaml.Unmarshal(inputYaml, &bb); err != nil {
		return nil, err
	}
	m := make(map[rune]ZColor)
	for _, b := range bb {
		col := ZColor(b.Color)
		if col < MinColor || col > MaxColor {
			return nil, fmt.Errorf("color %d out of range %d-%d", b.Color, MinColor, MaxColor)
		}
		for _, ch := range b.Symbols {
			if _, ok := m[ch]; ok {
				return nil, fmt.Errorf("duplicate symbol %q", ch)
			}
			m[ch] = col
		}
	}
	return m, nil
}
