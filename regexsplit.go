// Package regexsplit provides delimiter-inclusive splitting on top of any
// compiled regular expression.
//
// Conventional regex splitting (regexp.Split and friends) discards the
// matched delimiter. regexsplit keeps it, on either side of the cut:
//
//   - SplitAfter attaches each match to the end of the preceding substring,
//     like strings.SplitAfter.
//   - SplitBefore attaches each match to the start of the following
//     substring. There is no stdlib analogue; it is the natural policy when
//     the delimiter carries context for the text to its right (section
//     headers, list markers, log-line prefixes).
//
// For either policy, concatenating all emitted substrings reproduces the
// input exactly, and the number of substrings is always the number of
// matches plus one.
//
// regexsplit does not implement matching. A Splitter wraps any engine that
// exposes the stdlib FindAllIndex/FindAllStringIndex method pair (the
// Matcher interface):
//
//   - *regexp.Regexp (stdlib) satisfies Matcher directly.
//   - *coregex.Regex (github.com/coregx/coregex) satisfies Matcher directly.
//   - Package literalset compiles literal delimiter sets to an Aho-Corasick
//     automaton that satisfies Matcher.
//   - Package regexp2compat bridges github.com/dlclark/regexp2.
//
// Basic usage:
//
//	re := regexsplit.MustCompile(`\r?\n`)
//	for line := range re.SplitAfterStringSeq("one\ntwo\r\nthree") {
//	    fmt.Printf("%q\n", line) // "one\n", "two\r\n", "three"
//	}
//
// Attaching to an already-compiled engine:
//
//	re := coregex.MustCompile(`,\s*`)
//	parts := regexsplit.NewSplitter(re).SplitAfterString("a, b,c", -1)
//	// parts = ["a, ", "b,", "c"]
//
// Splitting is lazy and copy-free: emitted substrings are views into the
// input, valid for as long as the input itself.
package regexsplit

import (
	"fmt"
	"regexp"
)

// Matcher is the matching capability a Splitter consumes.
//
// FindAllIndex must return the locations of all non-overlapping matches of
// the pattern in b, as [start, end) byte-offset pairs in strictly increasing
// start order, or nil if there is no match. FindAllStringIndex is the same
// operation over a string. n limits the number of matches; n < 0 means all
// matches (a Splitter always passes -1). Neither call may retain or mutate
// the input.
//
// *regexp.Regexp and *coregex.Regex satisfy Matcher as-is. Implementations
// backed by engines with different position semantics must translate to byte
// offsets of the original input (see package regexp2compat).
type Matcher interface {
	FindAllIndex(b []byte, n int) [][]int
	FindAllStringIndex(s string, n int) [][]int
}

// Config controls optional Splitter behavior.
//
// The zero value disables all checks; use DefaultConfig for the recommended
// settings.
type Config struct {
	// ValidateSpans checks every span sequence returned by the Matcher
	// against the Matcher contract (in-bounds, non-overlapping, strictly
	// increasing starts) before splitting, and panics on the first
	// violation. A violation is a bug in the matching engine, not a runtime
	// condition, so there is nothing to recover; the check exists to fail
	// fast and by name instead of slicing out of bounds later.
	//
	// The check is O(matches) per split call. Disable it for engines you
	// trust (stdlib regexp and coregex always satisfy the contract).
	ValidateSpans bool
}

// DefaultConfig returns the recommended configuration: span validation on.
//
// Example:
//
//	config := regexsplit.DefaultConfig()
//	config.ValidateSpans = false // trusted engine, hot path
//	sp := regexsplit.NewSplitterWithConfig(re, config)
func DefaultConfig() Config {
	return Config{ValidateSpans: true}
}

// Splitter attaches the splitting operations to a compiled pattern.
//
// A Splitter holds no per-input state; it is safe for concurrent use exactly
// when its Matcher is (true for *regexp.Regexp and *coregex.Regex). Every
// split call obtains a fresh match traversal from the Matcher, so one
// Splitter can serve many inputs and many goroutines.
//
// Example:
//
//	sp := regexsplit.NewSplitter(regexp.MustCompile(`;\s*`))
//	fmt.Println(sp.SplitAfterString("a; b;c", -1)) // ["a; " "b;" "c"]
type Splitter struct {
	m      Matcher
	config Config
}

// NewSplitter attaches splitting operations to an already-compiled pattern.
//
// The Matcher is borrowed, not copied; compiling the pattern and deciding
// its matching semantics (Unicode handling, longest-match mode, byte mode)
// remain entirely the engine's business.
//
// Example:
//
//	re := regexp.MustCompile(`\d+`)
//	sp := regexsplit.NewSplitter(re)
func NewSplitter(m Matcher) *Splitter {
	return NewSplitterWithConfig(m, DefaultConfig())
}

// NewSplitterWithConfig is NewSplitter with explicit configuration.
//
// Example:
//
//	sp := regexsplit.NewSplitterWithConfig(re, regexsplit.Config{})
func NewSplitterWithConfig(m Matcher, config Config) *Splitter {
	if m == nil {
		panic("regexsplit: NewSplitter called with nil Matcher")
	}
	return &Splitter{m: m, config: config}
}

// Compile parses a regular expression with the standard library engine and
// returns a Splitter for it.
//
// This is a convenience for the common case; use NewSplitter to split with a
// different engine. The error is the stdlib compile error, unmodified.
//
// Example:
//
//	sp, err := regexsplit.Compile(`\r?\n`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(expr string) (*Splitter, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return NewSplitter(re), nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var lineEnd = regexsplit.MustCompile(`\r?\n`)
func MustCompile(expr string) *Splitter {
	sp, err := Compile(expr)
	if err != nil {
		panic("regexsplit: Compile(`" + expr + "`): " + err.Error())
	}
	return sp
}

// String returns a description of the wrapped pattern: the engine's own
// String result when it has one, otherwise the engine's type.
func (sp *Splitter) String() string {
	if s, ok := sp.m.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", sp.m)
}

// spans obtains one fresh match traversal over b from the Matcher.
func (sp *Splitter) spans(b []byte) [][]int {
	spans := sp.m.FindAllIndex(b, -1)
	if sp.config.ValidateSpans {
		checkSpans(spans, len(b))
	}
	return spans
}

// stringSpans obtains one fresh match traversal over s from the Matcher.
func (sp *Splitter) stringSpans(s string) [][]int {
	spans := sp.m.FindAllStringIndex(s, -1)
	if sp.config.ValidateSpans {
		checkSpans(spans, len(s))
	}
	return spans
}
