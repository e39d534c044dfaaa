package tailio

import (
	"bytes"
	"io"
)

// Mode selects whether a specifier counts lines or bytes.
type Mode int

const (
	LineMode Mode = iota
	ByteMode
)

func (m Mode) String() string {
	if m == ByteMode {
		return "bytes"
	}

	return "lines"
}

// Extent holds the total number of lines and bytes of a file.
type Extent struct {
	Lines int64
	Bytes int64
}

// Total returns the extent in the unit of m.
func (e Extent) Total(m Mode) int64 {
	if m == ByteMode {
		return e.Bytes
	}

	return e.Lines
}

// CountExtent reads rd to the end in a single pass. A trailing run of bytes
// without a \n counts as a line.
func CountExtent(rd io.Reader, buf []byte) (Extent, error) {
	if len(buf) == 0 {
		buf = make([]byte, defaultBufSize)
	}

	var ext Extent
	var last byte = '\n'
	for {
		n, err := rd.Read(buf)
		if n > 0 {
			ext.Bytes += int64(n)
			ext.Lines += int64(bytes.Count(buf[:n], []byte{'\n'}))
			last = buf[n-1]
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return Extent{}, err
		}
	}

	if last != '\n' {
		ext.Lines++
	}

	return ext, nil
}
