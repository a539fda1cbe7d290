package vecadd

import "errors"

// ErrLengthMismatch is returned when the operands and destination of a map do
// not have the same length.
var ErrLengthMismatch = errors.New("vecadd: operand lengths differ")

// AddSerial writes a[i] + b[i] into dst[i] for every i, in index order, on
// the calling goroutine. It is both the baseline and the reference result.
func AddSerial(dst, a, b []int) error {
	if err := checkLengths(dst, a, b); err != nil {
		return err
	}
	addRange(dst, a, b)
	return nil
}

func addRange(dst, a, b []int) {
	// Re-slicing lets the compiler drop the bounds checks in the loop.
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func checkLengths(dst, a, b []int) error {
	if len(a) != len(b) || len(dst) != len(a) {
		return ErrLengthMismatch
	}
	return nil
}
