package main

import (
	"github.com/gdamore/tcell/v2"
)

const noName = "[No Name]"

// Mode is the editor's input mode. Exactly one is active at a time;
// ModePrompt additionally carries the prompt label and the input built so
// far (promptLabel / promptInput on the Editor).
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModePrompt
)

type direction int

const (
	moveLeft direction = iota
	moveRight
	moveUp
	moveDown
)

type Editor struct {
	screen      tcell.Screen
	lines       []string // document content, one string per line, no terminators
	cursorX     int      // byte column within the current line
	cursorY     int      // row within the document
	filename    string
	width       int
	height      int
	offsetY     int // vertical scroll offset
	offsetX     int // horizontal scroll offset
	mode        Mode
	modified    bool   // unsaved changes since last successful save
	statusMsg   string // transient message shown on the bottom line
	promptLabel string
	promptInput string
}

func NewEditor(screen tcell.Screen, filename string) *Editor {
	width, height := screen.Size()
	if filename == "" {
		filename = noName
	}
	return &Editor{
		screen:    screen,
		lines:     nil,
		filename:  filename,
		width:     width,
		height:    height,
		mode:      ModeNormal,
		statusMsg: "HELP: :q = quit | :w = save | :wq = save & quit",
	}
}

// run is the main loop: render, block for one keypress, dispatch by mode.
// It returns when a quit command resolves; the caller restores the terminal.
func (e *Editor) run() error {
	for {
		e.draw()
		c, err := e.readKey()
		if err != nil {
			return err
		}
		quit := false
		switch e.mode {
		case ModeInsert:
			e.handleInsertKey(c)
		default:
			quit = e.handleNormalKey(c)
		}
		if quit {
			return nil
		}
	}
}

// textRows is the number of viewport rows available for document text; two
// rows are reserved for the status bar and the message line.
func (e *Editor) textRows() int {
	if e.height < 2 {
		return 0
	}
	return e.height - 2
}

// moveCursor adjusts the cursor one step, clamped at the buffer edges. After
// a vertical move the column snaps back inside the new line.
func (e *Editor) moveCursor(d direction) {
	switch d {
	case moveLeft:
		if e.cursorX > 0 {
			e.cursorX--
		}
	case moveRight:
		if e.cursorY < len(e.lines) && e.cursorX < len(e.lines[e.cursorY]) {
			e.cursorX++
		}
	case moveUp:
		if e.cursorY > 0 {
			e.cursorY--
		}
	case moveDown:
		if e.cursorY < len(e.lines)-1 {
			e.cursorY++
		}
	}
	e.clampCursorX()
}

// clampCursorX snaps the column to the end of the current line if it is
// dangling past it.
func (e *Editor) clampCursorX() {
	if e.cursorY < len(e.lines) && e.cursorX > len(e.lines[e.cursorY]) {
		e.cursorX = len(e.lines[e.cursorY])
	}
	if len(e.lines) == 0 {
		e.cursorX = 0
	}
}

// scroll recomputes the offsets with the minimal shift that brings the
// cursor back inside the viewport: snap to the cursor when it is above or
// left of the window, snap it to the last visible row/column when below or
// right. Idempotent when nothing moved.
func (e *Editor) scroll() {
	rows := e.textRows()

	// Vertical scrolling
	if e.cursorY < e.offsetY {
		e.offsetY = e.cursorY
	}
	if rows > 0 && e.cursorY >= e.offsetY+rows {
		e.offsetY = e.cursorY - rows + 1
	}

	// Horizontal scrolling
	if e.cursorX < e.offsetX {
		e.offsetX = e.cursorX
	}
	if e.width > 0 && e.cursorX >= e.offsetX+e.width {
		e.offsetX = e.cursorX - e.width + 1
	}
}
