package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fzft/go-intset/codec"
	"github.com/fzft/go-intset/set"
)

// SetCmd handles intset operator commands. Every operator is a pure
// function over parsed values, so the command struct carries no state; it
// exists to give the host one dispatch point with uniform arity checking
// and error replies.
type SetCmd struct{}

// NewSetCmd returns a new SetCmd.
func NewSetCmd() *SetCmd {
	return &SetCmd{}
}

type opKind uint8

const (
	opSetSet opKind = iota // two set literals
	opSetInt               // one set literal, one integer
	opSet                  // one set literal
)

type opSpec struct {
	kind opKind
	// one of the three is set, matching kind
	setSetFn func(a, b *set.IntSet) Reply
	setIntFn func(a *set.IntSet, x uint32) Reply
	setFn    func(a *set.IntSet) Reply
}

var opTable = map[string]opSpec{
	"contains": {kind: opSetInt, setIntFn: func(a *set.IntSet, x uint32) Reply {
		return boolReply(a.Contains(x))
	}},
	"contains-all": {kind: opSetSet, setSetFn: func(a, b *set.IntSet) Reply {
		return boolReply(a.ContainsAll(b))
	}},
	"contains-only": {kind: opSetSet, setSetFn: func(a, b *set.IntSet) Reply {
		return boolReply(a.ContainsOnly(b))
	}},
	"equal": {kind: opSetSet, setSetFn: func(a, b *set.IntSet) Reply {
		return boolReply(a.Equal(b))
	}},
	"not-equal": {kind: opSetSet, setSetFn: func(a, b *set.IntSet) Reply {
		return boolReply(a.NotEqual(b))
	}},
	"union": {kind: opSetSet, setSetFn: func(a, b *set.IntSet) Reply {
		return SetReply{val: a.Union(b)}
	}},
	"intersection": {kind: opSetSet, setSetFn: func(a, b *set.IntSet) Reply {
		return SetReply{val: a.Intersection(b)}
	}},
	"difference": {kind: opSetSet, setSetFn: func(a, b *set.IntSet) Reply {
		return SetReply{val: a.Difference(b)}
	}},
	"symmetric-difference": {kind: opSetSet, setSetFn: func(a, b *set.IntSet) Reply {
		return SetReply{val: a.SymmetricDifference(b)}
	}},
	"cardinality": {kind: opSet, setFn: func(a *set.IntSet) Reply {
		return IntReply{val: uint64(a.Cardinality())}
	}},
}

func boolReply(v bool) Reply {
	if v {
		return SharedTrueReply
	}
	return SharedFalseReply
}

// Do evaluates the named operator over its literal arguments. Operator
// names are matched case-insensitively. Unknown names, wrong arity and
// malformed literals come back as an ErrReply instead of an error return
// so the caller always has a Reply to encode.
func (cmd *SetCmd) Do(name string, args ...string) Reply {
	spec, ok := opTable[strings.ToLower(name)]
	if !ok {
		return ErrReply{err: fmt.Errorf("unknown operator %q", name)}
	}

	switch spec.kind {
	case opSetSet:
		if len(args) != 2 {
			return arityErr(name, 2, len(args))
		}
		a, err := codec.Parse(args[0])
		if err != nil {
			return ErrReply{err: err}
		}
		b, err := codec.Parse(args[1])
		if err != nil {
			return ErrReply{err: err}
		}
		return spec.setSetFn(a, b)
	case opSetInt:
		if len(args) != 2 {
			return arityErr(name, 2, len(args))
		}
		a, err := codec.Parse(args[0])
		if err != nil {
			return ErrReply{err: err}
		}
		x, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return ErrReply{err: fmt.Errorf("invalid element %q", args[1])}
		}
		return spec.setIntFn(a, uint32(x))
	default:
		if len(args) != 1 {
			return arityErr(name, 1, len(args))
		}
		a, err := codec.Parse(args[0])
		if err != nil {
			return ErrReply{err: err}
		}
		return spec.setFn(a)
	}
}

// Names returns the operator names in no particular order, for help output.
func (cmd *SetCmd) Names() []string {
	names := make([]string, 0, len(opTable))
	for name := range opTable {
		names = append(names, name)
	}
	return names
}

func arityErr(name string, want, got int) Reply {
	return ErrReply{err: fmt.Errorf("wrong number of arguments for %q: want %d, got %d", name, want, got)}
}
