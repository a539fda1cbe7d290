// Package vecadd implements element-wise addition of two integer arrays,
// serially and in parallel, plus the pieces around it: a reproducible random
// fill, the static chunk partitioner and the fail-fast validator.
//
// The parallel map splits [0, N) into contiguous chunks of a fixed size and
// hands them to a fixed set of workers round-robin before any work starts.
// Workers write disjoint ranges of the output, so the data path needs no
// locks or atomics; the only synchronization is the barrier at the end of
// the parallel region.
package vecadd
