package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrAborted is returned when the user abandons a confirmation prompt.
var ErrAborted = errors.New("prompt aborted")

// ConfirmFunc asks the user a yes/no question and reports the answer.
type ConfirmFunc func(prompt string, in io.Reader, out io.Writer) (bool, error)

// UI writes user-facing text and asks for confirmations. Output and error
// streams are injectable so command tests can capture them.
type UI struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader

	confirm ConfirmFunc
}

// New returns a UI bound to the process streams.
func New() *UI {
	return NewWithStreams(os.Stdout, os.Stderr, os.Stdin, nil)
}

// NewWithStreams returns a UI with explicit streams. A nil confirm falls back
// to the default line-oriented prompt.
func NewWithStreams(out, errOut io.Writer, in io.Reader, confirm ConfirmFunc) *UI {
	if confirm == nil {
		confirm = defaultConfirm
	}
	return &UI{Out: out, Err: errOut, In: in, confirm: confirm}
}

// Write writes a message to the output stream.
func (u *UI) Write(msg string) {
	fmt.Fprint(u.Out, msg)
}

// Writef writes a formatted message to the output stream.
func (u *UI) Writef(format string, args ...interface{}) {
	fmt.Fprintf(u.Out, format, args...)
}

// Error writes a message to the error stream.
func (u *UI) Error(msg string) {
	fmt.Fprint(u.Err, msg)
}

// Confirm asks the user a yes/no question. An abandoned prompt (closed input,
// interrupt) surfaces as ErrAborted rather than a bare read failure so
// callers can treat it as a deliberate cancellation.
func (u *UI) Confirm(prompt string) (bool, error) {
	ok, err := u.confirm(prompt, u.In, u.Out)
	if err != nil {
		return false, ErrAborted
	}
	return ok, nil
}

func defaultConfirm(prompt string, in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
