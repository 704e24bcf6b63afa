package archive

import (
	"archive/zip"
	"io"
	"os"
	"time"

	"epctl/pkg/errors"
)

// epoch is the timestamp stamped on every archive member. Pinning it makes
// archives reproducible: identical inputs produce identical bytes.
var epoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// Writer produces reproducible zip archives. Member timestamps are pinned to
// the zip epoch and file permission bits are preserved, so an executable
// stays executable after extraction while repeated runs over the same inputs
// stay byte-identical.
type Writer struct {
	zw *zip.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{zw: zip.NewWriter(w)}
}

// Add stores data under name with the given permission bits.
func (w *Writer) Add(name string, data []byte, mode os.FileMode) error {
	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: epoch,
	}
	header.SetMode(mode)

	member, err := w.zw.CreateHeader(header)
	if err != nil {
		return errors.NewIOError("failed to create archive member "+name, err)
	}
	if _, err := member.Write(data); err != nil {
		return errors.NewIOError("failed to write archive member "+name, err)
	}
	return nil
}

// AddFile stores the file at path under name, carrying over its permission
// bits.
func (w *Writer) AddFile(path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.NewIOError("failed to stat "+path, err)
	}
	data, err := os.ReadFile(path) // #nosec G304 - callers control archive inputs
	if err != nil {
		return errors.NewIOError("failed to read "+path, err)
	}
	return w.Add(name, data, info.Mode())
}

// Close flushes the archive directory. The archive is incomplete until Close
// returns nil.
func (w *Writer) Close() error {
	if err := w.zw.Close(); err != nil {
		return errors.NewIOError("failed to finalize archive", err)
	}
	return nil
}
