package tailio

import (
	"bytes"
	"io"
)

const defaultBufSize = 32 * 1024

// Scanner reads newline delimited lines from an io.Reader, tracking the
// number and byte offsets of every line it passes.
type Scanner struct {
	rd           io.Reader
	buf          []byte
	maxLineLen   int
	lineStartIdx int
	dataLen      int
	// partial counts bytes of the current line that were already dropped from buf
	partial  int64
	err      error
	eof      error
	lastline Line
}

type ScannerOption func(*Scanner)

// WithStartPos tells the scanner that the first byte it reads is at
// startingByte in the file and belongs to line startingLine.
func WithStartPos(startingByte int64, startingLine int64) ScannerOption {
	return func(s *Scanner) {
		s.lastline.LineEnding = startingByte - 1
		s.lastline.No = startingLine - 1
	}
}

// WithMaxLineLen stops the scanner with ErrLineTooLong once a single line
// no longer fits in a buffer of n bytes. Without it the buffer grows as
// needed.
func WithMaxLineLen(n int) ScannerOption {
	return func(s *Scanner) {
		s.maxLineLen = n
	}
}

func NewScanner(rd io.Reader, buf []byte, opts ...ScannerOption) *Scanner {
	if len(buf) == 0 {
		buf = make([]byte, defaultBufSize)
	}

	s := &Scanner{
		rd:  rd,
		buf: buf,
		lastline: Line{
			LineEnding: -1,
		},
	}

	for i := range opts {
		opts[i](s)
	}

	return s
}

// Scan advances to the next line, which is then available through Line.
// It returns false at the end of input or on error; Err tells which.
func (s *Scanner) Scan() bool {
	for s.err == nil {
		if i := bytes.IndexByte(s.buf[s.lineStartIdx:s.dataLen], '\n'); i >= 0 {
			s.advance(s.lineStartIdx + i + 1)
			return true
		}

		if s.eof != nil {
			if s.lineStartIdx < s.dataLen {
				// unterminated last line
				s.advance(s.dataLen)
				return true
			}

			s.err = io.EOF
			return false
		}

		s.compact()
		if s.dataLen == len(s.buf) {
			if s.maxLineLen > 0 && len(s.buf) >= s.maxLineLen {
				s.err = ErrLineTooLong
				return false
			}

			s.grow()
		}

		s.fill()
	}

	return false
}

// SkipLines discards up to n lines without holding any of them in memory,
// so it never grows the buffer. It returns the number of lines skipped,
// which is less than n only when the input ends first.
func (s *Scanner) SkipLines(n int64) (int64, error) {
	var skipped int64
	for skipped < n {
		if s.err != nil {
			if s.err == io.EOF {
				return skipped, nil
			}

			return skipped, s.err
		}

		if i := bytes.IndexByte(s.buf[s.lineStartIdx:s.dataLen], '\n'); i >= 0 {
			s.advance(s.lineStartIdx + i + 1)
			skipped++
			continue
		}

		if s.eof != nil {
			if s.lineStartIdx < s.dataLen || s.partial > 0 {
				s.advance(s.dataLen)
				skipped++
				continue
			}

			s.err = io.EOF
			continue
		}

		s.partial += int64(s.dataLen - s.lineStartIdx)
		s.lineStartIdx = 0
		s.dataLen = 0
		s.fill()
	}

	s.lastline.Raw = nil
	return skipped, nil
}

// WriteTo copies everything the scanner has not yet returned to w, starting
// right after the last scanned or skipped line. It ends the scan.
func (s *Scanner) WriteTo(w io.Writer) (int64, error) {
	if s.err != nil && s.err != io.EOF {
		return 0, s.err
	}

	var written int64
	if s.lineStartIdx < s.dataLen {
		n, err := w.Write(s.buf[s.lineStartIdx:s.dataLen])
		written += int64(n)
		s.lineStartIdx += n
		if err != nil {
			return written, err
		}
	}

	s.lineStartIdx = 0
	s.dataLen = 0
	if s.eof == nil {
		n, err := io.CopyBuffer(w, s.rd, s.buf)
		written += n
		if err != nil {
			s.err = err
			return written, err
		}
	}

	s.eof = io.EOF
	s.err = io.EOF
	return written, nil
}

func (s *Scanner) advance(end int) {
	linelen := s.partial + int64(end-s.lineStartIdx)
	s.lastline.No++
	s.lastline.LineStart = s.lastline.LineEnding + 1
	s.lastline.LineEnding += linelen
	s.lastline.Raw = s.buf[s.lineStartIdx:end]
	s.lineStartIdx = end
	s.partial = 0
}

func (s *Scanner) compact() {
	if s.lineStartIdx == 0 {
		return
	}

	n := copy(s.buf, s.buf[s.lineStartIdx:s.dataLen])
	s.dataLen = n
	s.lineStartIdx = 0
}

func (s *Scanner) grow() {
	size := 2 * len(s.buf)
	if s.maxLineLen > 0 && size > s.maxLineLen {
		size = s.maxLineLen
	}

	buf := make([]byte, size)
	copy(buf, s.buf[:s.dataLen])
	s.buf = buf
}

func (s *Scanner) fill() {
	n, err := s.rd.Read(s.buf[s.dataLen:])
	if n > 0 {
		s.dataLen += n
	}

	if err != nil {
		if err == io.EOF {
			s.eof = err
			// continue to read from buffer
		} else {
			s.err = err
		}
	}
}

func (s *Scanner) Line() Line {
	return s.lastline
}

func (s *Scanner) Err() error {
	return s.err
}
