package commands

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"github.com/fzft/go-intset/set"
)

func TestSetCmdBoolOperators(t *testing.T) {
	cmd := NewSetCmd()

	assert.Equal(t, SharedTrueReply, cmd.Do("contains", "{5,10,15}", "10"))
	assert.Equal(t, SharedFalseReply, cmd.Do("contains", "{5,10,15}", "11"))

	assert.Equal(t, SharedTrueReply, cmd.Do("contains-all", "{1,2,3}", "{2,3}"))
	assert.Equal(t, SharedFalseReply, cmd.Do("contains-all", "{2,3}", "{1,2,3}"))

	assert.Equal(t, SharedTrueReply, cmd.Do("contains-only", "{2,3}", "{1,2,3}"))
	assert.Equal(t, SharedFalseReply, cmd.Do("contains-only", "{1,2,3}", "{2,3}"))

	assert.Equal(t, SharedTrueReply, cmd.Do("equal", "{1, 2}", "{2, 1, 1}"))
	assert.Equal(t, SharedFalseReply, cmd.Do("equal", "{1}", "{2}"))
	assert.Equal(t, SharedTrueReply, cmd.Do("not-equal", "{1}", "{2}"))
	assert.Equal(t, SharedFalseReply, cmd.Do("not-equal", "{1}", "{1}"))
}

func TestSetCmdSetOperators(t *testing.T) {
	cmd := NewSetCmd()

	reply := cmd.Do("union", "{1,2}", "{2,3}")
	assert.Equal(t, SetReplyType, reply.Type())
	assert.Equal(t, "{1,2,3}", string(reply.Encoding()))

	reply = cmd.Do("intersection", "{1,2,3}", "{2,3,4}")
	assert.Equal(t, "{2,3}", string(reply.Encoding()))

	reply = cmd.Do("difference", "{1,2,3}", "{2}")
	assert.Equal(t, "{1,3}", string(reply.Encoding()))

	reply = cmd.Do("symmetric-difference", "{1,2,3}", "{2}")
	assert.Equal(t, "{1,3}", string(reply.Encoding()))

	reply = cmd.Do("union", "{}", "{}")
	assert.Equal(t, "{}", string(reply.Encoding()))
	assert.True(t, reply.Content().(*set.IntSet).Equal(set.Empty))
}

func TestSetCmdCardinality(t *testing.T) {
	cmd := NewSetCmd()

	reply := cmd.Do("cardinality", "{5,10,15}")
	assert.Equal(t, IntReplyType, reply.Type())
	assert.Equal(t, uint64(3), reply.Content())
	assert.Equal(t, "3", string(reply.Encoding()))

	reply = cmd.Do("cardinality", "{}")
	assert.Equal(t, "0", string(reply.Encoding()))
}

func TestSetCmdCaseInsensitiveNames(t *testing.T) {
	cmd := NewSetCmd()
	assert.Equal(t, SharedTrueReply, cmd.Do("CONTAINS", "{1}", "1"))
	assert.Equal(t, SetReplyType, cmd.Do("Union", "{1}", "{2}").Type())
}

func TestSetCmdErrors(t *testing.T) {
	cmd := NewSetCmd()

	reply := cmd.Do("frobnicate", "{1}", "{2}")
	assert.Equal(t, ErrReplyType, reply.Type())

	reply = cmd.Do("union", "{1}")
	assert.Equal(t, ErrReplyType, reply.Type(), "arity is checked before parsing")

	reply = cmd.Do("union", "{1,}", "{2}")
	assert.Equal(t, ErrReplyType, reply.Type())
	assert.Contains(t, string(reply.Encoding()), "ERR ")

	reply = cmd.Do("contains", "{1}", "not-a-number")
	assert.Equal(t, ErrReplyType, reply.Type())

	reply = cmd.Do("contains", "{1}", "4294967296")
	assert.Equal(t, ErrReplyType, reply.Type(), "the element argument does not wrap, only set literals do")

	reply = cmd.Do("cardinality", "{1}", "{2}")
	assert.Equal(t, ErrReplyType, reply.Type())
}

func TestReplyEncodings(t *testing.T) {
	assert.Equal(t, "true", string(SharedTrueReply.Encoding()))
	assert.Equal(t, "false", string(SharedFalseReply.Encoding()))
	assert.Equal(t, "{}", string(SharedEmptySetReply.Encoding()))
	assert.Equal(t, "42", string(IntReply{val: 42}.Encoding()))
}
