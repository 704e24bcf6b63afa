package ui

import (
	"io"
	"os"

	"golang.org/x/term"

	"epctl/pkg/errors"
)

// PipeReader reads the whole of a stream only when it is not an interactive
// terminal, so commands can accept piped input without blocking on a TTY.
type PipeReader struct {
	stream     *os.File
	isTerminal func(fd int) bool
}

// NewPipeReader returns a PipeReader over the given stream, usually stdin.
func NewPipeReader(stream *os.File) *PipeReader {
	return &PipeReader{stream: stream, isTerminal: term.IsTerminal}
}

// Read consumes the stream and returns its contents. When the stream is an
// interactive terminal nothing is read and ok is false.
func (r *PipeReader) Read() (value string, ok bool, err error) {
	if r.isTerminal(int(r.stream.Fd())) {
		return "", false, nil
	}
	data, err := io.ReadAll(r.stream)
	if err != nil {
		return "", false, errors.NewIOError("failed to read piped input", err)
	}
	return string(data), true, nil
}
