package regexsplit

import "fmt"

// checkSpans validates a span sequence against the Matcher contract for an
// input of length n. Each span must be a [start, end) pair with
// 0 <= start <= end <= n, and spans must be non-overlapping with strictly
// increasing starts.
//
// A violation means the matching engine is broken; checkSpans panics with
// the offending span rather than letting the splitter slice out of bounds
// somewhere far from the cause.
func checkSpans(spans [][]int, n int) {
	prevStart, prevEnd := -1, 0
	for i, span := range spans {
		if len(span) < 2 {
			panic(fmt.Sprintf("regexsplit: Matcher returned malformed span %v at index %d", span, i))
		}
		start, end := span[0], span[1]
		if start < 0 || end < start || end > n {
			panic(fmt.Sprintf("regexsplit: Matcher returned out-of-bounds span [%d,%d) at index %d for input of length %d", start, end, i, n))
		}
		if start <= prevStart || start < prevEnd {
			panic(fmt.Sprintf("regexsplit: Matcher returned out-of-order span [%d,%d) at index %d, after [%d,%d)", start, end, i, prevStart, prevEnd))
		}
		prevStart, prevEnd = start, end
	}
}
