package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fzft/go-intset/set"
)

// grammar accepted by Parse: optional spaces, '{', a comma-separated list
// of decimal digit runs (each surrounded by optional spaces), '}', optional
// spaces. Tabs and other whitespace are not part of the grammar.
var setPattern = regexp.MustCompile(`^ *\{ *(( *[0-9]+ *, *)* *[0-9]+ *)? *\} *$`)

// SyntaxError is the only error the text codec produces. It carries the
// offending input for diagnostics.
type SyntaxError struct {
	Input string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid input syntax for intset: %q", e.Input)
}

// Parse converts a bracketed, comma-separated list of unsigned integers
// into a canonical IntSet. Duplicates collapse and order is normalized, so
// "{3, 1, 2, 1}" parses to {1,2,3}.
//
// A digit run longer than uint32 can hold wraps silently, the same way the
// stored data was produced; callers that need overflow detection must
// validate upstream.
func Parse(s string) (*set.IntSet, error) {
	if !setPattern.MatchString(s) {
		return nil, &SyntaxError{Input: s}
	}

	var (
		elems []uint32
		curr  uint32
		inRun bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			curr = curr*10 + uint32(c-'0')
			inRun = true
		} else if inRun {
			elems = append(elems, curr)
			curr = 0
			inRun = false
		}
	}
	// the closing '}' always ends the last run, but guard anyway
	if inRun {
		elems = append(elems, curr)
	}
	return set.New(elems...), nil
}

// Render produces the textual form of v: "{}" for the empty set, otherwise
// the ascending elements joined by single commas with no whitespace.
// Parse(Render(v)) equals v for every v; the reverse round trip is not
// byte-exact because Parse normalizes spacing, order and duplicates.
func Render(v *set.IntSet) string {
	n := int(v.Cardinality())
	if n == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(v.At(i)), 10))
	}
	b.WriteByte('}')
	return b.String()
}
