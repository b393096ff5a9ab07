// Package indent provides a text writer that tracks an indentation level and
// collapses requested blank lines.
package indent

import (
	"fmt"
	"io"
	"strings"
)

// DefaultStep is the number of spaces per indentation level.
const DefaultStep = 4

// Writer writes text, indenting the start of each line by the current level.
// The first write error is kept and all later writes are dropped.
type Writer struct {
	w     io.Writer
	step  int
	depth int

	indentNext    bool
	blank         bool
	suppressBlank bool

	err error
}

// New returns a Writer that indents by step spaces per level.
func New(w io.Writer, step int) *Writer {
	return &Writer{w: w, step: step, indentNext: true}
}

// Write writes s, indenting every line that starts in it.
func (w *Writer) Write(s string) {
	w.write(s, true)
}

// Writef formats and writes with indentation.
func (w *Writer) Writef(format string, args ...any) {
	w.write(fmt.Sprintf(format, args...), true)
}

// WriteRaw writes s without any indentation. It is used for code blocks that
// must start in the first column.
func (w *Writer) WriteRaw(s string) {
	w.write(s, false)
}

// Blank requests a blank line before the next non-empty write. Requests made
// immediately after entering a new level are ignored, as are repeated ones.
func (w *Writer) Blank() {
	if !w.suppressBlank {
		w.blank = true
	}
}

// Enter increases the indentation by one level and returns the function that
// restores it. Calling the returned function more than once has no effect.
func (w *Writer) Enter() func() {
	w.depth++
	w.suppressBlank = true

	left := false

	return func() {
		if left {
			return
		}

		left = true
		w.depth--
		w.blank = false
		w.suppressBlank = false
	}
}

// Depth returns the current indentation level.
func (w *Writer) Depth() int {
	return w.depth
}

// Err returns the first error returned by the underlying writer.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(s string, indent bool) {
	if s == "" {
		return
	}

	if w.blank {
		w.emit("\n")
		w.blank = false
	}

	lines := strings.Split(s, "\n")
	prefix := strings.Repeat(" ", w.step*w.depth)

	for _, line := range lines[:len(lines)-1] {
		if indent && w.indentNext && line != "" {
			w.emit(prefix)
		}

		w.emit(line + "\n")
		w.indentNext = true
	}

	if last := lines[len(lines)-1]; last != "" {
		if indent && w.indentNext {
			w.emit(prefix)
		}

		w.emit(last)
		w.indentNext = false
	} else {
		w.indentNext = true
	}

	w.suppressBlank = false
}

func (w *Writer) emit(s string) {
	if w.err != nil {
		return
	}

	_, w.err = io.WriteString(w.w, s)
}
