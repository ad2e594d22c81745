// Package regexp2compat adapts github.com/dlclark/regexp2 expressions to
// the regexsplit.Matcher interface.
//
// regexp2 supports constructs the RE2 family rejects, lookarounds and
// backreferences among them, which makes delimiters like `,(?=\S)` or
// `(?<=\d)-` expressible. Two impedance mismatches are bridged here:
//
//   - regexp2 reports match positions as rune offsets into its own rune
//     decoding of the input. The adapter translates them back to byte
//     offsets into the original string, which is what a Splitter slices by.
//   - regexp2 searches return an error, but only when a MatchTimeout is
//     configured and exceeded. The Matcher interface has no error channel,
//     so the adapter panics on a timeout. Wrap expressions without a
//     MatchTimeout, or recover at the call site.
//
// Usage:
//
//	re := regexp2.MustCompile(`,(?=\S)`, regexp2.None)
//	sp := regexsplit.NewSplitter(regexp2compat.Wrap(re))
//	parts := sp.SplitAfterString("a,b, c,d", -1)
//	// ["a," "b, c," "d"]
package regexp2compat

import (
	"github.com/dlclark/regexp2"

	"github.com/coregx/regexsplit"
)

// Matcher adapts one compiled regexp2 expression. It is stateless across
// calls and safe for concurrent use when the wrapped expression is.
type Matcher struct {
	re *regexp2.Regexp
}

var _ regexsplit.Matcher = (*Matcher)(nil)

// Wrap adapts re to the regexsplit.Matcher interface.
func Wrap(re *regexp2.Regexp) *Matcher {
	if re == nil {
		panic("regexp2compat: Wrap called with nil Regexp")
	}
	return &Matcher{re: re}
}

// String returns the source text of the wrapped expression.
func (m *Matcher) String() string {
	return m.re.String()
}

// FindAllStringIndex returns the [start, end) byte locations of successive
// matches in s, or nil if there are none. If n >= 0 it returns at most n
// locations. It panics if the wrapped expression exceeds its MatchTimeout.
func (m *Matcher) FindAllStringIndex(s string, n int) [][]int {
	var out [][]int
	if n == 0 {
		return out
	}

	// Byte offset of each rune position. regexp2 decodes the input to
	// []rune up front, one rune per byte for invalid UTF-8, exactly
	// mirroring Go's range-over-string, so position r in regexp2's text
	// begins at byte offsets[r].
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))

	match, err := m.re.FindStringMatch(s)
	for match != nil {
		out = append(out, []int{offsets[match.Index], offsets[match.Index+match.Length]})
		if n >= 0 && len(out) >= n {
			break
		}
		match, err = m.re.FindNextMatch(match)
	}
	if err != nil {
		panic("regexp2compat: " + m.re.String() + ": " + err.Error())
	}
	return out
}

// FindAllIndex is FindAllStringIndex for a byte slice input. The slice is
// converted once; the returned offsets index into b.
func (m *Matcher) FindAllIndex(b []byte, n int) [][]int {
	return m.FindAllStringIndex(string(b), n)
}
