package vecadd

// Range is a half-open index range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.End - r.Start }

// Chunks splits [0, n) into contiguous ranges of chunkSize elements. The last
// range is shorter when chunkSize does not divide n. It returns nil when n or
// chunkSize is not positive.
func Chunks(n, chunkSize int) []Range {
	if n <= 0 || chunkSize <= 0 {
		return nil
	}
	count := (n + chunkSize - 1) / chunkSize
	chunks := make([]Range, 0, count)
	for start := 0; start < n; start += chunkSize {
		chunks = append(chunks, Range{Start: start, End: min(start+chunkSize, n)})
	}
	return chunks
}

// Assign distributes chunks over workers round-robin: chunk k belongs to
// worker k % workers. Each worker's list keeps ascending index order.
func Assign(chunks []Range, workers int) [][]Range {
	if workers <= 0 {
		return nil
	}
	plan := make([][]Range, workers)
	perWorker := (len(chunks) + workers - 1) / workers
	for w := range plan {
		plan[w] = make([]Range, 0, perWorker)
	}
	for k, c := range chunks {
		w := k % workers
		plan[w] = append(plan[w], c)
	}
	return plan
}
