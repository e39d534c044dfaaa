package tailio

import (
	"fmt"
	"regexp"
	"strconv"
)

// Specifier is a parsed line or byte count.
//
// The zero value is Signed(0), which selects nothing. FromStart is the
// "+0" form and selects everything; it is deliberately distinct from
// Signed(0).
type Specifier struct {
	fromStart bool
	n         int64
}

// FromStart returns the "+0" specifier.
func FromStart() Specifier {
	return Specifier{fromStart: true}
}

// Signed returns a specifier for n. A positive n starts output at the n-th
// element, a negative n keeps the last -n elements and 0 selects nothing.
func Signed(n int64) Specifier {
	return Specifier{n: n}
}

func (s Specifier) IsFromStart() bool {
	return s.fromStart
}

// Value returns the signed count. It is 0 for FromStart.
func (s Specifier) Value() int64 {
	return s.n
}

func (s Specifier) String() string {
	switch {
	case s.fromStart:
		return "+0"
	case s.n > 0:
		return "+" + strconv.FormatInt(s.n, 10)
	default:
		return strconv.FormatInt(s.n, 10)
	}
}

var specifierPattern = regexp.MustCompile(`^([+-])?(\d+)$`)

// SpecifierError reports text that is not a valid count.
type SpecifierError struct {
	Text string
}

func (e *SpecifierError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidSpecifier, e.Text)
}

func (e *SpecifierError) Unwrap() error {
	return ErrInvalidSpecifier
}

// ParseSpecifier parses an optionally signed decimal count.
//
// A bare count is taken as negative, so "5" means the last 5 elements.
// An explicit sign is kept as is, except "+0" which yields FromStart.
// Every value in the int64 range is accepted, including the bare form of
// 9223372036854775808 which becomes math.MinInt64.
func ParseSpecifier(text string) (Specifier, error) {
	m := specifierPattern.FindStringSubmatch(text)
	if m == nil {
		return Specifier{}, &SpecifierError{Text: text}
	}

	sign, digits := m[1], m[2]
	if sign == "" {
		sign = "-"
	}

	// the sign goes into the text so the most negative value never passes
	// through its unrepresentable positive magnitude
	n, err := strconv.ParseInt(sign+digits, 10, 64)
	if err != nil {
		return Specifier{}, &SpecifierError{Text: text}
	}

	if sign == "+" && n == 0 {
		return FromStart(), nil
	}

	return Signed(n), nil
}
