package tailio

import "errors"

var ErrInvalidSpecifier error = errors.New("not a valid number")
var ErrLineTooLong error = errors.New("a line doesnot fit in the buffer")

type Line struct {
	// No is the number of current line, starting from 1
	No int64
	// LineStart is the start offset of current line in the File, in number of bytes, staring from 0
	LineStart int64
	// LineEnding is the offset of the last byte of current line, in number of bytes, staring from 0.
	// It points at the \n when the line is terminated.
	LineEnding int64
	// Raw holds the line content, including the trailing \n if there is one.
	// It is only valid until the next call to Scan.
	Raw []byte
}

// Terminated reports whether the line ends with \n.
// Only the last line of a file may be unterminated.
func (l Line) Terminated() bool {
	return len(l.Raw) > 0 && l.Raw[len(l.Raw)-1] == '\n'
}
