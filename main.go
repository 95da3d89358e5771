package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [filename]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nA minimal vi-like text editor.\n")
		fmt.Fprintf(os.Stderr, "\nNormal mode:\n")
		fmt.Fprintf(os.Stderr, "  h j k l  Move cursor\n")
		fmt.Fprintf(os.Stderr, "  i        Enter insert mode\n")
		fmt.Fprintf(os.Stderr, "  o        Open a line below and insert\n")
		fmt.Fprintf(os.Stderr, "  x        Delete character under cursor\n")
		fmt.Fprintf(os.Stderr, "  :        Command prompt (:w, :q, :q!, :wq)\n")
		os.Exit(1)
	}

	filename := ""
	if len(os.Args) == 2 {
		filename = os.Args[1]
	}

	screen, guard, err := acquireScreen()
	if err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}
	defer guard.release()

	editor := NewEditor(screen, filename)
	if filename != "" {
		if err := editor.loadFile(); err != nil {
			guard.release()
			log.Fatalf("Failed to open %s: %v", filename, err)
		}
	}

	if err := editor.run(); err != nil {
		guard.release()
		log.Fatalf("Editor error: %v", err)
	}
}
