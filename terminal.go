package main

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Key bytes the editor core dispatches on. Everything that reaches the core
// is a single ASCII byte; multi-byte escape sequences never leave the
// terminal layer.
const (
	keyEscape    byte = 0x1b
	keyEnter     byte = '\r'
	keyBackspace byte = 127
)

// screenGuard restores the terminal exactly once, on whichever exit path
// runs first.
type screenGuard struct {
	screen tcell.Screen
	once   sync.Once
}

func (g *screenGuard) release() {
	g.once.Do(g.screen.Fini)
}

// acquireScreen puts the terminal into raw cell mode and returns a guard
// whose release restores the original settings.
func acquireScreen() (tcell.Screen, *screenGuard, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, nil, err
	}
	return screen, &screenGuard{screen: screen}, nil
}

// readKey blocks until a keypress arrives that can be represented as a
// single byte and returns it. Resize events are absorbed here: the viewport
// dimensions are refreshed and a frame is redrawn before waiting again.
func (e *Editor) readKey() (byte, error) {
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return 0, errors.New("terminal event stream closed")
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if c, ok := keyByte(ev); ok {
				return c, nil
			}
		case *tcell.EventResize:
			e.width, e.height = ev.Size()
			e.screen.Sync()
			e.draw()
		}
	}
}

// keyByte translates a key event into the single-byte input model. Arrow
// and function keys have no byte representation and are dropped.
func keyByte(ev *tcell.EventKey) (byte, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return keyEnter, true
	case tcell.KeyEscape:
		return keyEscape, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return keyBackspace, true
	case tcell.KeyTab:
		return '\t', true
	case tcell.KeyRune:
		if r := ev.Rune(); r > 0 && r < 128 {
			return byte(r), true
		}
	}
	return 0, false
}
