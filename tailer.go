package tailio

import (
	"fmt"
	"io"
)

// Tailer writes the trailing part of a file selected by a Specifier.
//
// After a successful call StartingByte holds the offset of the first byte
// written and StartingLine the number of the first line written (line mode
// only, 0 otherwise). Both are -1 when nothing was written.
type Tailer struct {
	fd           io.ReadSeeker
	buf          []byte
	StartingByte int64
	StartingLine int64
}

func NewTailer(fd io.ReadSeeker, buf []byte) *Tailer {
	if len(buf) == 0 {
		buf = make([]byte, defaultBufSize)
	}

	return &Tailer{
		fd:           fd,
		buf:          buf,
		StartingByte: -1,
		StartingLine: -1,
	}
}

// Extent counts the lines and bytes of the whole file.
func (t *Tailer) Extent() (Extent, error) {
	if _, err := t.fd.Seek(0, io.SeekStart); err != nil {
		return Extent{}, err
	}

	return CountExtent(t.fd, t.buf)
}

// Tail counts the file and then writes the part of it that spec selects in
// the unit of mode.
func (t *Tailer) Tail(w io.Writer, mode Mode, spec Specifier) error {
	ext, err := t.Extent()
	if err != nil {
		return err
	}

	if mode == ByteMode {
		return t.TailBytes(w, spec, ext.Bytes)
	}

	return t.TailLines(w, spec, ext.Lines)
}

// TailLines writes every line from the one spec resolves to through the end
// of the file. Line boundaries are found by scanning from the beginning.
func (t *Tailer) TailLines(w io.Writer, spec Specifier, totalLines int64) error {
	t.StartingByte, t.StartingLine = -1, -1

	start, ok := ResolveStart(spec, totalLines)
	if !ok {
		return nil
	}

	if _, err := t.fd.Seek(0, io.SeekStart); err != nil {
		return err
	}

	scanner := NewScanner(t.fd, t.buf)
	skipped, err := scanner.SkipLines(start)
	if err != nil {
		return err
	}

	if skipped < start {
		return fmt.Errorf("file shrank to %d lines, expected %d", skipped, totalLines)
	}

	t.StartingByte = scanner.Line().LineEnding + 1
	t.StartingLine = start + 1
	_, err = scanner.WriteTo(w)
	return err
}

// TailBytes seeks straight to the byte offset spec resolves to and copies
// the rest of the file.
func (t *Tailer) TailBytes(w io.Writer, spec Specifier, totalBytes int64) error {
	t.StartingByte, t.StartingLine = -1, -1

	start, ok := ResolveStart(spec, totalBytes)
	if !ok {
		return nil
	}

	if _, err := t.fd.Seek(start, io.SeekStart); err != nil {
		return err
	}

	t.StartingByte = start
	t.StartingLine = 0
	_, err := io.CopyBuffer(w, t.fd, t.buf)
	return err
}
