package regexsplit

// splitEager materializes a split traversal into a slice, honoring the
// stdlib count convention: n > 0 caps the result at n substrings with the
// unsplit remainder last, n == 0 yields nil, n < 0 yields everything.
func splitEager[S sequence](input S, spans [][]int, p policy, n int) []S {
	if n == 0 {
		return nil
	}
	count := len(spans) + 1
	if n > 0 && n < count {
		count = n
	}
	out := make([]S, 0, count)
	last := 0
	for _, span := range spans {
		if n > 0 && len(out) >= n-1 {
			break
		}
		emit, resume := p.cuts(span[0], span[1])
		out = append(out, input[last:emit])
		last = resume
	}
	return append(out, input[last:])
}

// SplitAfter slices b into substrings after each match of the pattern and
// returns a slice of those substrings. Each match stays attached to the end
// of the substring it terminates, so the substrings concatenate back to b.
//
// The count n determines the number of substrings to return:
//
//	n > 0: at most n substrings; the last substring is the unsplit remainder
//	n == 0: the result is nil
//	n < 0: all substrings
//
// With n < 0 the result has len(matches)+1 elements; an unmatched pattern
// returns b as the single element. The substrings are views into b.
//
// Example:
//
//	re := regexsplit.MustCompile(`\r?\n`)
//	re.SplitAfter([]byte("one\ntwo\r\nthree"), -1)
//	// ["one\n" "two\r\n" "three"]
func (sp *Splitter) SplitAfter(b []byte, n int) [][]byte {
	return splitEager(b, sp.spans(b), splitAfter, n)
}

// SplitAfterString is SplitAfter for a string input.
//
// Example:
//
//	re := regexsplit.MustCompile(`;\s*`)
//	re.SplitAfterString("a; b;c", -1) // ["a; " "b;" "c"]
func (sp *Splitter) SplitAfterString(s string, n int) []string {
	return splitEager(s, sp.stringSpans(s), splitAfter, n)
}

// SplitBefore slices b into substrings before each match of the pattern and
// returns a slice of those substrings. Each match stays attached to the
// start of the substring it introduces, so the substrings concatenate back
// to b. The count n follows the same convention as SplitAfter.
//
// Example:
//
//	re := regexsplit.MustCompile(`(?m)^-`)
//	re.SplitBefore([]byte("fruits:\n-apple\n-pear"), -1)
//	// ["fruits:\n" "-apple\n" "-pear"]
func (sp *Splitter) SplitBefore(b []byte, n int) [][]byte {
	return splitEager(b, sp.spans(b), splitBefore, n)
}

// SplitBeforeString is SplitBefore for a string input.
func (sp *Splitter) SplitBeforeString(s string, n int) []string {
	return splitEager(s, sp.stringSpans(s), splitBefore, n)
}

// Split slices b into substrings separated by matches of the pattern and
// drops the matched text, like regexp.Split over bytes. The count n follows
// the same convention as SplitAfter.
//
// Unlike regexp.Split, the result with n < 0 always has len(matches)+1
// elements: a match at the start or end of b contributes an empty substring
// on its far side rather than being swallowed.
func (sp *Splitter) Split(b []byte, n int) [][]byte {
	return splitEager(b, sp.spans(b), splitExclusive, n)
}

// SplitString is Split for a string input.
func (sp *Splitter) SplitString(s string, n int) []string {
	return splitEager(s, sp.stringSpans(s), splitExclusive, n)
}
