package regexsplit

// sequence is the input type a split traversal ranges over. All splitting
// logic is written once against this constraint; the exported methods pin it
// to string or []byte.
type sequence interface {
	~string | ~[]byte
}

// policy decides where each match span cuts the input.
type policy uint8

const (
	// splitExclusive drops the match: emit ends where the match starts,
	// the next substring resumes where it ends.
	splitExclusive policy = iota
	// splitAfter keeps the match at the end of the preceding substring.
	splitAfter
	// splitBefore keeps the match at the start of the following substring.
	splitBefore
)

// cuts maps one match span [start, end) to the two offsets that drive the
// split: emit is where the current substring stops, resume is where the next
// one begins. emit == resume except under splitExclusive, where the gap is
// the dropped match.
func (p policy) cuts(start, end int) (emit, resume int) {
	switch p {
	case splitAfter:
		return end, end
	case splitBefore:
		return start, start
	default:
		return start, end
	}
}

// iterState is the lifecycle of one split traversal.
//
// Transitions are one-way: Active -> Draining when the spans run out,
// Draining -> Done after the final substring is emitted. next never emits
// from Done, so a finished traversal stays finished no matter how often it
// is polled.
type iterState uint8

const (
	// stateActive: spans remain; each next emits up to the next cut.
	stateActive iterState = iota
	// stateDraining: spans are exhausted; exactly one substring, from the
	// last cut to the end of the input, is still owed.
	stateDraining
	// stateDone: everything emitted.
	stateDone
)

// iterator is one in-flight split traversal: the input, its match spans,
// and the cursor state between emissions.
//
// Invariants: 0 <= last <= len(input); spans[idx:] are the unconsumed
// matches; every emitted substring is input[a:b] for monotonically
// non-decreasing a, b, so the concatenation of all emissions reproduces
// input exactly and the emission count is len(spans)+1.
type iterator[S sequence] struct {
	input  S
	spans  [][]int
	policy policy

	idx   int // next unconsumed span
	last  int // where the next substring begins
	state iterState
}

func newIterator[S sequence](input S, spans [][]int, p policy) *iterator[S] {
	return &iterator[S]{input: input, spans: spans, policy: p}
}

// next returns the next substring of the traversal. After the final
// substring it returns the zero value and false, forever.
func (it *iterator[S]) next() (S, bool) {
	for {
		switch it.state {
		case stateActive:
			if it.idx >= len(it.spans) {
				it.state = stateDraining
				continue
			}
			span := it.spans[it.idx]
			it.idx++
			emit, resume := it.policy.cuts(span[0], span[1])
			out := it.input[it.last:emit]
			it.last = resume
			return out, true
		case stateDraining:
			it.state = stateDone
			out := it.input[it.last:]
			it.last = len(it.input)
			return out, true
		default: // stateDone
			var zero S
			return zero, false
		}
	}
}
