package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/da-tools/da/internal/domain"
	"golang.org/x/term"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out io.Writer
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{out: os.Stdout}
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// IsTerminal reports whether the underlying output is an interactive terminal.
// Non-file outputs (like bytes.Buffer) never are.
func (w *Writer) IsTerminal() bool {
	return IsTerminal(w.out)
}

// IsTerminal reports whether out is a file attached to a terminal.
func IsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

var _ domain.OutputWriter = (*Writer)(nil)
