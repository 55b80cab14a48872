package locomotion

// Consecutive phases of a contact sequence sample their shared boundary
// instant twice, once as the last row of one phase and once as the first row
// of the next. Spline construction needs a strictly increasing abscissa, so
// the repeated rows are dropped before building interpolants. Duplicates come
// from identical boundary sampling rather than rounding, so exact equality is
// the correct test.

// deduplicateIndices scans the timeline once and returns the indices of the
// rows to keep: the first occurrence of every timestamp, in order.
func deduplicateIndices(times []float64) []int {
	seen := make(map[float64]struct{}, len(times))
	keep := make([]int, 0, len(times))
	for i, t := range times {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		keep = append(keep, i)
	}
	return keep
}

// filterFloats returns the elements of xs at the kept indices.
func filterFloats(xs []float64, keep []int) []float64 {
	out := make([]float64, 0, len(keep))
	for _, i := range keep {
		out = append(out, xs[i])
	}
	return out
}

// filterRows returns the rows at the kept indices. Every array parallel to the
// timeline must be pruned with the same index list or the outputs silently
// misalign.
func filterRows(rows [][]float64, keep []int) [][]float64 {
	out := make([][]float64, 0, len(keep))
	for _, i := range keep {
		out = append(out, rows[i])
	}
	return out
}
