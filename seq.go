package regexsplit

import "iter"

// splitSeq defers a split traversal behind an iter.Seq. The span fetch runs
// inside the closure, so no matching work happens until the sequence is
// ranged, and every range starts over with a fresh fetch and a fresh
// iterator.
func splitSeq[S sequence](input S, spans func() [][]int, p policy) iter.Seq[S] {
	return func(yield func(S) bool) {
		it := newIterator(input, spans(), p)
		for out, ok := it.next(); ok; out, ok = it.next() {
			if !yield(out) {
				return
			}
		}
	}
}

// SplitAfterSeq returns an iterator over substrings of b split after each
// match of the pattern: each match stays attached to the end of the
// substring it terminates, so concatenating the yielded substrings
// reproduces b exactly.
//
// The iterator yields len(matches)+1 substrings. When the pattern does not
// match, it yields b whole; a match at the very end of b makes the final
// substring empty. Substrings are views into b, not copies. Matching runs
// when the sequence is ranged, and breaking out of the range stops the
// traversal early.
//
// Example:
//
//	re := regexsplit.MustCompile(`\r?\n`)
//	for line := range re.SplitAfterSeq([]byte("one\ntwo\r\nthree")) {
//	    // "one\n", "two\r\n", "three"
//	}
func (sp *Splitter) SplitAfterSeq(b []byte) iter.Seq[[]byte] {
	return splitSeq(b, func() [][]int { return sp.spans(b) }, splitAfter)
}

// SplitAfterStringSeq is SplitAfterSeq for a string input.
//
// Example:
//
//	re := regexsplit.MustCompile(`,`)
//	for field := range re.SplitAfterStringSeq("a,b,c") {
//	    // "a,", "b,", "c"
//	}
func (sp *Splitter) SplitAfterStringSeq(s string) iter.Seq[string] {
	return splitSeq(s, func() [][]int { return sp.stringSpans(s) }, splitAfter)
}

// SplitBeforeSeq returns an iterator over substrings of b split before each
// match of the pattern: each match stays attached to the start of the
// substring it introduces, so concatenating the yielded substrings
// reproduces b exactly.
//
// The iterator yields len(matches)+1 substrings. The first substring is
// everything before the first match, and is empty when b starts with a
// match. This is the policy to reach for when the delimiter belongs to the
// text that follows it, as with markdown list markers or log-line
// timestamps.
//
// Example:
//
//	re := regexsplit.MustCompile(`(?m)^-`)
//	for item := range re.SplitBeforeSeq([]byte("fruits:\n-apple\n-pear")) {
//	    // "fruits:\n", "-apple\n", "-pear"
//	}
func (sp *Splitter) SplitBeforeSeq(b []byte) iter.Seq[[]byte] {
	return splitSeq(b, func() [][]int { return sp.spans(b) }, splitBefore)
}

// SplitBeforeStringSeq is SplitBeforeSeq for a string input.
func (sp *Splitter) SplitBeforeStringSeq(s string) iter.Seq[string] {
	return splitSeq(s, func() [][]int { return sp.stringSpans(s) }, splitBefore)
}

// SplitSeq returns an iterator over substrings of b split around each match
// of the pattern. The matched text itself is dropped, as with regexp.Split.
//
// Unlike regexp.Split, the yield count is always len(matches)+1: a match at
// the start or end of b still yields its empty substring on the far side.
func (sp *Splitter) SplitSeq(b []byte) iter.Seq[[]byte] {
	return splitSeq(b, func() [][]int { return sp.spans(b) }, splitExclusive)
}

// SplitStringSeq is SplitSeq for a string input.
func (sp *Splitter) SplitStringSeq(s string) iter.Seq[string] {
	return splitSeq(s, func() [][]int { return sp.stringSpans(s) }, splitExclusive)
}
