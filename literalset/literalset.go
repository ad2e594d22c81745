// Package literalset matches a fixed set of literal delimiters.
//
// When the delimiters carry no regex structure (line endings, field
// separators, a vocabulary of markers), compiling them into an Aho-Corasick
// automaton beats a hand-built alternation: one pass over the input finds
// every occurrence of every delimiter, with no per-delimiter rescanning.
//
// A compiled Set satisfies the regexsplit.Matcher interface, so it plugs
// into a Splitter like any regex engine:
//
//	set := literalset.MustCompile("\r\n", "\n")
//	sp := regexsplit.NewSplitter(set)
//	lines := sp.SplitAfterString("one\ntwo\r\nthree", -1)
//	// ["one\n" "two\r\n" "three"]
//
// Matches are reported leftmost and non-overlapping: after each match the
// scan resumes at the match end. Which delimiter wins when several start at
// the same offset is decided by the automaton, not by the order the
// delimiters were given.
package literalset

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regexsplit"
)

// CompileError records a delimiter set the automaton builder rejected.
type CompileError struct {
	Patterns []string
	Err      error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("literalset: compiling %q: %v", e.Patterns, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Set is a compiled delimiter set. It is immutable after Compile and safe
// for concurrent use.
type Set struct {
	auto   *ahocorasick.Automaton
	delims []string
}

var _ regexsplit.Matcher = (*Set)(nil)

// Compile builds the automaton for the given delimiters.
//
// At least one delimiter is required and every delimiter must be non-empty;
// zero-width delimiters cannot advance a scan. Duplicates are harmless.
func Compile(delims ...string) (*Set, error) {
	if len(delims) == 0 {
		return nil, errors.New("literalset: no delimiters")
	}
	builder := ahocorasick.NewBuilder()
	for i, d := range delims {
		if d == "" {
			return nil, fmt.Errorf("literalset: empty delimiter at index %d", i)
		}
		builder.AddPattern([]byte(d))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, &CompileError{Patterns: delims, Err: err}
	}
	set := &Set{auto: auto, delims: make([]string, len(delims))}
	copy(set.delims, delims)
	return set, nil
}

// MustCompile is like Compile but panics if the set cannot be compiled.
func MustCompile(delims ...string) *Set {
	set, err := Compile(delims...)
	if err != nil {
		panic(fmt.Sprintf("literalset: Compile(%q): %v", delims, err))
	}
	return set
}

// String returns the delimiters in Go quoted form.
func (s *Set) String() string {
	return fmt.Sprintf("%q", s.delims)
}

// IsMatch reports whether any delimiter occurs in b.
func (s *Set) IsMatch(b []byte) bool {
	return s.auto.IsMatch(b)
}

// FindAllIndex returns the [start, end) locations of successive delimiter
// occurrences in b, leftmost and non-overlapping, or nil if there are none.
// If n >= 0 it returns at most n locations. The result satisfies the
// regexsplit.Matcher contract.
func (s *Set) FindAllIndex(b []byte, n int) [][]int {
	var out [][]int
	for at := 0; at < len(b); {
		if n >= 0 && len(out) >= n {
			break
		}
		m := s.auto.Find(b, at)
		if m == nil {
			break
		}
		out = append(out, []int{m.Start, m.End})
		at = m.End
	}
	return out
}

// FindAllStringIndex is FindAllIndex for a string input. The string is
// converted once; the returned offsets index into str.
func (s *Set) FindAllStringIndex(str string, n int) [][]int {
	return s.FindAllIndex([]byte(str), n)
}
