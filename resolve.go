package tailio

// ResolveStart maps a specifier onto a zero-based start index in a stream of
// total elements (lines or bytes). ok is false when nothing should be
// printed.
func ResolveStart(spec Specifier, total int64) (start int64, ok bool) {
	if spec.IsFromStart() {
		return 0, total > 0
	}

	n := spec.Value()
	if n == 0 || total <= 0 || n > total {
		return 0, false
	}

	if n > 0 {
		return n - 1, true
	}

	// total >= 0, so this cannot overflow even for math.MinInt64
	start = total + n
	if start < 0 {
		start = 0
	}

	return start, true
}
