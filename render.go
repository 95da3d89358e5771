package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// displayWidth returns the display width of a string considering CJK characters
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// displayWidthRune returns the display width of a single rune
func displayWidthRune(r rune) int {
	return runewidth.RuneWidth(r)
}

// draw renders one full frame: text rows, status bar, message line, and the
// hardware cursor. The only state it writes is the scroll offsets.
func (e *Editor) draw() {
	e.scroll()
	e.screen.Clear()

	e.drawRows()
	e.drawStatusBar()
	e.drawMessageBar()

	if e.mode == ModePrompt {
		e.screen.ShowCursor(displayWidth(e.promptLabel+e.promptInput), e.height-1)
	} else {
		screenX := e.cursorX - e.offsetX
		screenY := e.cursorY - e.offsetY
		if screenX >= 0 && screenX < e.width && screenY >= 0 && screenY < e.textRows() {
			e.screen.ShowCursor(screenX, screenY)
		}
	}

	e.screen.Show()
}

// drawRows emits the visible slice of the document. Rows below the end of
// the document are marked with a tilde. Columns are bytes, drawn one cell
// per byte.
func (e *Editor) drawRows() {
	rows := e.textRows()
	for y := 0; y < rows; y++ {
		fileRow := y + e.offsetY
		if fileRow >= len(e.lines) {
			e.screen.SetContent(0, y, '~', nil, tcell.StyleDefault)
			continue
		}
		line := e.lines[fileRow]
		if e.offsetX >= len(line) {
			continue
		}
		visible := line[e.offsetX:]
		for x := 0; x < len(visible) && x < e.width; x++ {
			e.screen.SetContent(x, y, rune(visible[x]), nil, tcell.StyleDefault)
		}
	}
}

// drawStatusBar draws the reverse-video bar: filename, modified marker, and
// line count on the left, cursor position flush right.
func (e *Editor) drawStatusBar() {
	if e.height < 2 {
		return
	}
	statusStyle := tcell.StyleDefault.Reverse(true)
	y := e.height - 2

	for x := 0; x < e.width; x++ {
		e.screen.SetContent(x, y, ' ', nil, statusStyle)
	}

	modified := ""
	if e.modified {
		modified = " [Modified]"
	}
	status := fmt.Sprintf("%s%s - %d lines", e.filename, modified, len(e.lines))
	pos := fmt.Sprintf("%d:%d", e.cursorY+1, e.cursorX+1)

	e.drawText(0, y, status, statusStyle)
	posX := e.width - displayWidth(pos)
	if posX > displayWidth(status) {
		e.drawText(posX, y, pos, statusStyle)
	}
}

// drawMessageBar shows the transient status message, or the active prompt
// while one is collecting input.
func (e *Editor) drawMessageBar() {
	if e.height < 1 {
		return
	}
	msg := e.statusMsg
	if e.mode == ModePrompt {
		msg = e.promptLabel + e.promptInput
	}
	e.drawText(0, e.height-1, msg, tcell.StyleDefault)
}

func (e *Editor) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		e.screen.SetContent(col, y, r, nil, style)
		col += displayWidthRune(r)
		if col >= e.width {
			break
		}
	}
}
