package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadFile reads the file into the buffer, one line per entry with the
// terminator stripped. A missing file is not an error: the buffer stays
// empty and the file is created on the first save.
func (e *Editor) loadFile() error {
	file, err := os.Open(e.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	e.lines = nil
	scanner := bufio.NewScanner(file)
	// Increase the scanner buffer to handle very long lines
	const maxCapacity = 10 * 1024 * 1024 // 10MB per line cap
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		e.lines = append(e.lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return scanner.Err()
}

// saveFile writes every buffer line followed by a newline and returns the
// number of bytes written. It does not touch the in-memory state.
func (e *Editor) saveFile() (int, error) {
	file, err := os.Create(e.filename)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	written := 0
	for _, line := range e.lines {
		if _, err := writer.WriteString(line); err != nil {
			return written, err
		}
		if _, err := writer.WriteString("\n"); err != nil {
			return written, err
		}
		written += len(line) + 1
	}
	if err := writer.Flush(); err != nil {
		return written, err
	}
	return written, nil
}

// save resolves the target filename (prompting when the buffer is unnamed)
// and writes the buffer out. On success the dirty flag clears and the status
// line reports the byte count; on failure or an aborted Save-as prompt the
// dirty flag is untouched. Returns whether the save completed.
func (e *Editor) save() bool {
	if e.filename == noName {
		name := e.prompt("Save as: ")
		if name == "" {
			e.statusMsg = "Save aborted."
			return false
		}
		e.filename = name
	}

	written, err := e.saveFile()
	if err != nil {
		e.statusMsg = "Error writing to file: " + err.Error()
		return false
	}
	e.modified = false
	e.statusMsg = fmt.Sprintf("%d bytes written to %s", written, e.filename)
	return true
}
