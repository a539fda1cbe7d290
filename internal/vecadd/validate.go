package vecadd

import apperrors "github.com/agbru/vecbench/internal/errors"

// Validation is the outcome of comparing a parallel result against the
// serial reference.
type Validation struct {
	// OK is true when every element matched.
	OK bool
	// Index is the first mismatching position, or -1 when OK.
	Index int
	// Got is the parallel value at Index.
	Got int
	// Want is the serial value at Index.
	Want int
	// Compared is the number of positions examined before stopping.
	Compared int
}

// Validate compares r with serial in index order and stops at the first
// difference. When the lengths differ, the first index past the shorter
// slice is reported, with the missing side read as 0.
func Validate(r, serial []int) Validation {
	n := min(len(r), len(serial))
	for i := 0; i < n; i++ {
		if r[i] != serial[i] {
			return Validation{Index: i, Got: r[i], Want: serial[i], Compared: i + 1}
		}
	}
	if len(r) != len(serial) {
		v := Validation{Index: n, Compared: n}
		if n < len(r) {
			v.Got = r[n]
		}
		if n < len(serial) {
			v.Want = serial[n]
		}
		return v
	}
	return Validation{OK: true, Index: -1, Compared: n}
}

// Status returns "OK" or "FAIL".
func (v Validation) Status() string {
	if v.OK {
		return "OK"
	}
	return "FAIL"
}

// Err returns a MismatchError describing the first difference, or nil.
func (v Validation) Err() error {
	if v.OK {
		return nil
	}
	return apperrors.MismatchError{Index: v.Index, Got: v.Got, Want: v.Want}
}
