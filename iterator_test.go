package regexsplit

import "testing"

// TestPolicyCuts tests the emit/resume offsets for each policy
func TestPolicyCuts(t *testing.T) {
	tests := []struct {
		name       string
		p          policy
		start, end int
		wantEmit   int
		wantResume int
	}{
		{"after keeps match on the left", splitAfter, 3, 5, 5, 5},
		{"before keeps match on the right", splitBefore, 3, 5, 3, 3},
		{"exclusive drops match", splitExclusive, 3, 5, 3, 5},
		{"after zero width", splitAfter, 4, 4, 4, 4},
		{"before zero width", splitBefore, 4, 4, 4, 4},
		{"exclusive zero width", splitExclusive, 4, 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emit, resume := tt.p.cuts(tt.start, tt.end)
			if emit != tt.wantEmit || resume != tt.wantResume {
				t.Errorf("cuts(%d, %d) = %d, %d, want %d, %d",
					tt.start, tt.end, emit, resume, tt.wantEmit, tt.wantResume)
			}
		})
	}
}

// TestIteratorLifecycle tests the state transitions of one traversal
func TestIteratorLifecycle(t *testing.T) {
	it := newIterator("a,b", [][]int{{1, 2}}, splitAfter)
	if it.state != stateActive {
		t.Fatalf("fresh iterator state = %d, want stateActive", it.state)
	}

	out, ok := it.next()
	if !ok || out != "a," {
		t.Fatalf("first next() = %q, %v, want %q, true", out, ok, "a,")
	}
	if it.state != stateActive {
		t.Errorf("state after first emit = %d, want stateActive", it.state)
	}

	// Spans are exhausted now, so this call drains the tail and finishes.
	out, ok = it.next()
	if !ok || out != "b" {
		t.Fatalf("second next() = %q, %v, want %q, true", out, ok, "b")
	}
	if it.state != stateDone {
		t.Errorf("state after tail emit = %d, want stateDone", it.state)
	}

	out, ok = it.next()
	if ok || out != "" {
		t.Errorf("next() after done = %q, %v, want %q, false", out, ok, "")
	}
}

// TestIteratorFused tests that a finished traversal stays finished
func TestIteratorFused(t *testing.T) {
	it := newIterator("x", nil, splitBefore)

	if out, ok := it.next(); !ok || out != "x" {
		t.Fatalf("next() = %q, %v, want %q, true", out, ok, "x")
	}

	for i := 0; i < 4; i++ {
		if out, ok := it.next(); ok {
			t.Fatalf("next() call %d after exhaustion = %q, true, want false", i, out)
		}
	}
}

// TestIteratorNoSpans tests that an unmatched input drains in one piece
func TestIteratorNoSpans(t *testing.T) {
	it := newIterator("no delimiters here", nil, splitAfter)

	out, ok := it.next()
	if !ok || out != "no delimiters here" {
		t.Errorf("next() = %q, %v, want whole input, true", out, ok)
	}
	if _, ok := it.next(); ok {
		t.Error("next() after draining = true, want false")
	}
}

// TestIteratorBytes tests the []byte instantiation
func TestIteratorBytes(t *testing.T) {
	it := newIterator([]byte("x;y"), [][]int{{1, 2}}, splitBefore)

	want := []string{"x", ";y"}
	for _, w := range want {
		out, ok := it.next()
		if !ok || string(out) != w {
			t.Fatalf("next() = %q, %v, want %q, true", out, ok, w)
		}
	}
	if out, ok := it.next(); ok {
		t.Errorf("next() after exhaustion = %q, true, want false", out)
	}
}

// TestIteratorZeroWidthSpans tests that zero-width spans advance the cursor
func TestIteratorZeroWidthSpans(t *testing.T) {
	it := newIterator("ab", [][]int{{0, 0}, {1, 1}}, splitAfter)

	want := []string{"", "a", "b"}
	for _, w := range want {
		out, ok := it.next()
		if !ok || out != w {
			t.Fatalf("next() = %q, %v, want %q, true", out, ok, w)
		}
	}
	if _, ok := it.next(); ok {
		t.Error("next() after exhaustion = true, want false")
	}
}
