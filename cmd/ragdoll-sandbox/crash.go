package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// handleCrash restores the terminal and prints the stack for a recovered panic
func handleCrash(screen tcell.Screen, r any) {
	if r == nil {
		return
	}
	if screen != nil {
		screen.Fini()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// goSafe runs fn on a new goroutine; a panic resets the terminal before exiting
func goSafe(screen tcell.Screen, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(screen, r)
			}
		}()
		fn()
	}()
}
