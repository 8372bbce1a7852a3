package nyan2zop

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// A Player loops the stripped frames in the terminal with the mapped colors,
// for eyeballing the animation without assembling a z-machine story file.
type Player struct {
	opt    Options
	frames []Frame
}

// NewPlayer strips the given frames and returns a Player for them.
func NewPlayer(opt Options, frames ...Frame) (*Player, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames given")
	}
	stripped := make([]Frame, 0, len(frames))
	for _, f := range frames {
		s, err := f.Strip()
		if err != nil {
			return nil, fmt.Errorf("Strip frame %d failed: %w", f.ID, err)
		}
		stripped = append(stripped, s)
	}
	return &Player{opt: opt, frames: stripped}, nil
}

// NewPlayerFromPath loads the frame files like NewFromPath and returns a
// Player for them.
func NewPlayerFromPath(opt Options) (*Player, error) {
	c, err := NewFromPath(opt)
	if err != nil {
		return nil, err
	}
	return NewPlayer(opt, c.frames...)
}

// Run plays the animation until a key is pressed. FrameDelay is in frames of
// 1/60th of a second, like the c64 displayers count them.
func (p *Player) Run() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell.NewScreen failed: %w", err)
	}
	if err = s.Init(); err != nil {
		return fmt.Errorf("screen.Init failed: %w", err)
	}
	defer s.Fini()
	s.HideCursor()

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			ev := s.PollEvent()
			switch ev.(type) {
			case *tcell.EventKey:
				return
			case *tcell.EventResize:
				s.Sync()
			case nil:
				return
			}
		}
	}()

	delay := p.opt.FrameDelay
	if delay <= 0 {
		delay = DefaultFrameDelay
	}
	ticker := time.NewTicker(time.Duration(delay) * time.Second / 60)
	defer ticker.Stop()
	for i := 0; ; i++ {
		p.draw(s, p.frames[i%len(p.frames)])
		select {
		case <-quit:
			return nil
		case <-ticker.C:
		}
	}
}

func (p *Player) draw(s tcell.Screen, f Frame) {
	s.Clear()
	for y, line := range f.Normalized() {
		x := 0
		for _, ch := range line {
			style := tcell.StyleDefault.Bold(true)
			if col, ok := ColorCode(ch); ok {
				style = style.Foreground(col.tcellColor())
			}
			s.SetContent(x, y, ch, nil, style)
			x++
		}
	}
	s.Show()
}

// tcellColor maps a z-machine color code to the terminal palette.
func (c ZColor) tcellColor() tcell.Color {
	switch c {
	case 2:
		return tcell.ColorBlack
	case 3:
		return tcell.ColorRed
	case 4:
		return tcell.ColorGreen
	case 5:
		return tcell.ColorYellow
	case 6:
		return tcell.ColorBlue
	case 7:
		return tcell.ColorFuchsia
	case 8:
		return tcell.ColorAqua
	case 9:
		return tcell.ColorWhite
	case 10:
		return tcell.ColorGray
	}
	return tcell.ColorDefault
}
