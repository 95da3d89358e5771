package main

// Line buffer primitives. Rows and columns are 0-indexed; columns are byte
// offsets. Out-of-range arguments are silent no-ops, and the modified flag
// is only set when the buffer actually changes.

// insertChar inserts one character at (row, col). If row equals the current
// line count a new empty line is appended first, so typing at the end of the
// document grows it.
func (e *Editor) insertChar(row, col int, ch byte) {
	if row == len(e.lines) {
		e.lines = append(e.lines, "")
	}
	if row < 0 || row >= len(e.lines) {
		return
	}
	line := e.lines[row]
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	e.lines[row] = line[:col] + string(rune(ch)) + line[col:]
	e.modified = true
}

// deleteCharBefore removes the character immediately before col. Column 0 is
// a no-op: deleting at the start of a line does not join it with the
// previous line. That is a known boundary behavior, not an oversight.
func (e *Editor) deleteCharBefore(row, col int) {
	if row < 0 || row >= len(e.lines) {
		return
	}
	line := e.lines[row]
	if col <= 0 || col > len(line) {
		return
	}
	e.lines[row] = line[:col-1] + line[col:]
	e.modified = true
}

// deleteCharAt removes the character at (row, col); no-op past end of line.
func (e *Editor) deleteCharAt(row, col int) {
	if row < 0 || row >= len(e.lines) {
		return
	}
	line := e.lines[row]
	if col < 0 || col >= len(line) {
		return
	}
	e.lines[row] = line[:col] + line[col+1:]
	e.modified = true
}

// splitLine truncates line[row] at col and inserts the remainder as a new
// line below. When row sits one past the last line, a single empty line is
// appended instead. The cursor moves to the start of the new line.
func (e *Editor) splitLine(row, col int) {
	if row < 0 || row > len(e.lines) {
		return
	}
	if row == len(e.lines) {
		e.lines = append(e.lines, "")
	} else {
		line := e.lines[row]
		if col < 0 {
			col = 0
		}
		if col > len(line) {
			col = len(line)
		}
		rest := line[col:]
		e.lines[row] = line[:col]
		e.lines = append(e.lines, "")
		copy(e.lines[row+2:], e.lines[row+1:])
		e.lines[row+1] = rest
	}
	e.cursorY = row + 1
	e.cursorX = 0
	e.modified = true
}

// insertBlankLineAfter inserts an empty line after row. The insertion index
// is clamped so the "open line" command works on an empty document.
func (e *Editor) insertBlankLineAfter(row int) {
	at := row + 1
	if at < 0 {
		at = 0
	}
	if at > len(e.lines) {
		at = len(e.lines)
	}
	e.lines = append(e.lines, "")
	copy(e.lines[at+1:], e.lines[at:])
	e.lines[at] = ""
	e.modified = true
}
