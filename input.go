package main

// handleNormalKey dispatches a Normal-mode keypress. It returns true when a
// quit command resolved and the main loop should stop.
func (e *Editor) handleNormalKey(c byte) bool {
	switch c {
	case 'i':
		e.mode = ModeInsert
		e.statusMsg = "INSERT MODE"

	case 'o':
		e.insertBlankLineAfter(e.cursorY)
		if e.cursorY < len(e.lines)-1 {
			e.cursorY++
		}
		e.cursorX = 0
		e.mode = ModeInsert
		e.statusMsg = "INSERT MODE"

	case 'h':
		e.moveCursor(moveLeft)
	case 'l':
		e.moveCursor(moveRight)
	case 'k':
		e.moveCursor(moveUp)
	case 'j':
		e.moveCursor(moveDown)

	case 'x':
		e.deleteUnderCursor()

	case ':':
		cmd := e.prompt(":")
		return e.runCommand(cmd)
	}
	return false
}

// handleInsertKey dispatches an Insert-mode keypress. Escape leaves the
// mode; every other byte edits the buffer and stays in Insert.
func (e *Editor) handleInsertKey(c byte) {
	switch c {
	case keyEscape:
		e.mode = ModeNormal
		e.statusMsg = "NORMAL MODE"
	case keyBackspace:
		// No line join at column 0.
		if e.cursorX > 0 {
			e.deleteCharBefore(e.cursorY, e.cursorX)
			e.cursorX--
		}
	case keyEnter:
		e.splitLine(e.cursorY, e.cursorX)
	default:
		e.insertChar(e.cursorY, e.cursorX, c)
		e.cursorX++
	}
}

// deleteUnderCursor implements `x`. The cursor may legally sit one past the
// last character after earlier deletions; clamp onto the last character so
// repeated presses consume the line right to left.
func (e *Editor) deleteUnderCursor() {
	if e.cursorY >= len(e.lines) {
		return
	}
	line := e.lines[e.cursorY]
	if len(line) == 0 {
		return
	}
	if e.cursorX >= len(line) {
		e.cursorX = len(line) - 1
	}
	e.deleteCharAt(e.cursorY, e.cursorX)
}

// runCommand executes a resolved prompt string. The return value reports
// whether the editor should quit.
func (e *Editor) runCommand(cmd string) bool {
	switch cmd {
	case "":
		return false
	case "q":
		if e.modified {
			e.statusMsg = "Unsaved changes! Use :q! to force quit."
			e.screen.Beep()
			return false
		}
		return true
	case "q!":
		return true
	case "w":
		e.save()
		return false
	case "wq":
		// Quit only if the buffer actually reached disk.
		return e.save()
	default:
		e.statusMsg = "Unknown command: " + cmd
		e.screen.Beep()
		return false
	}
}

// prompt collects a line of input on the message bar and returns it; Escape
// cancels and returns the empty string. It runs its own read/draw loop, so a
// command handler may invoke it again from inside command resolution (the
// Save-as case) as an ordinary nested call.
func (e *Editor) prompt(label string) string {
	prevMode := e.mode
	prevLabel, prevInput := e.promptLabel, e.promptInput
	e.mode = ModePrompt
	e.promptLabel = label
	e.promptInput = ""
	defer func() {
		e.mode = prevMode
		e.promptLabel, e.promptInput = prevLabel, prevInput
		e.statusMsg = ""
	}()

	for {
		e.draw()
		c, err := e.readKey()
		if err != nil {
			return ""
		}
		switch {
		case c == keyEnter:
			return e.promptInput
		case c == keyEscape:
			return ""
		case c == keyBackspace:
			if len(e.promptInput) > 0 {
				e.promptInput = e.promptInput[:len(e.promptInput)-1]
			}
		case c >= 32 && c < 127:
			e.promptInput += string(rune(c))
		}
	}
}
