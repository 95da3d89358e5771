package main

import (
	"reflect"
	"testing"
)

func TestInsertCharGrowsEmptyDocument(t *testing.T) {
	e := newTestEditor(t)

	e.insertChar(0, 0, 'a')

	if !reflect.DeepEqual(e.lines, []string{"a"}) {
		t.Errorf("Expected lines [a], got %v", e.lines)
	}
	if !e.modified {
		t.Error("Insert should mark the buffer modified")
	}
}

func TestInsertCharMidLine(t *testing.T) {
	e := newTestEditor(t, "hllo")

	e.insertChar(0, 1, 'e')

	if e.lines[0] != "hello" {
		t.Errorf("Expected line 'hello', got %q", e.lines[0])
	}
}

func TestInsertCharRowOutOfRange(t *testing.T) {
	e := newTestEditor(t, "one")

	e.insertChar(5, 0, 'x')

	if !reflect.DeepEqual(e.lines, []string{"one"}) {
		t.Errorf("Out-of-range insert should be a no-op, got %v", e.lines)
	}
	if e.modified {
		t.Error("No-op insert should not mark the buffer modified")
	}
}

func TestDeleteCharBeforeMidLine(t *testing.T) {
	e := newTestEditor(t, "hello")

	e.deleteCharBefore(0, 3)

	if e.lines[0] != "helo" {
		t.Errorf("Expected 'helo', got %q", e.lines[0])
	}
}

func TestDeleteCharBeforeNoJoinAtColumnZero(t *testing.T) {
	e := newTestEditor(t, "one", "two")

	e.deleteCharBefore(1, 0)

	if !reflect.DeepEqual(e.lines, []string{"one", "two"}) {
		t.Errorf("Delete at column 0 should not join lines, got %v", e.lines)
	}
	if e.modified {
		t.Error("Boundary no-op should not mark the buffer modified")
	}
}

func TestDeleteCharAt(t *testing.T) {
	e := newTestEditor(t, "hello")

	e.deleteCharAt(0, 0)
	if e.lines[0] != "ello" {
		t.Errorf("Expected 'ello', got %q", e.lines[0])
	}

	e.deleteCharAt(0, 10)
	if e.lines[0] != "ello" {
		t.Errorf("Delete past end of line should be a no-op, got %q", e.lines[0])
	}
}

func TestSplitLineMidLine(t *testing.T) {
	e := newTestEditor(t, "hello", "world")

	e.splitLine(0, 2)

	if !reflect.DeepEqual(e.lines, []string{"he", "llo", "world"}) {
		t.Errorf("Expected [he llo world], got %v", e.lines)
	}
	if e.cursorY != 1 || e.cursorX != 0 {
		t.Errorf("Cursor should be at start of new line (1,0), got (%d,%d)", e.cursorY, e.cursorX)
	}
}

func TestSplitLineAtDocumentEnd(t *testing.T) {
	e := newTestEditor(t, "hello")
	e.cursorY = 1

	e.splitLine(1, 0)

	if !reflect.DeepEqual(e.lines, []string{"hello", ""}) {
		t.Errorf("Split one past the last line should append, got %v", e.lines)
	}
	if e.cursorY != 2 || e.cursorX != 0 {
		t.Errorf("Cursor should be at (2,0), got (%d,%d)", e.cursorY, e.cursorX)
	}
}

func TestInsertBlankLineAfter(t *testing.T) {
	e := newTestEditor(t, "one", "two")

	e.insertBlankLineAfter(0)

	if !reflect.DeepEqual(e.lines, []string{"one", "", "two"}) {
		t.Errorf("Expected [one '' two], got %v", e.lines)
	}
}

func TestInsertBlankLineAfterOnEmptyDocument(t *testing.T) {
	e := newTestEditor(t)

	e.insertBlankLineAfter(0)

	if !reflect.DeepEqual(e.lines, []string{""}) {
		t.Errorf("Expected [''], got %v", e.lines)
	}
}
