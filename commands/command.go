package commands

import (
	"strconv"

	"github.com/fzft/go-intset/codec"
	"github.com/fzft/go-intset/set"
)

type ReplyType uint8

const (
	BoolReplyType ReplyType = iota
	IntReplyType
	SetReplyType
	ErrReplyType
)

// Reply is what an operator hands back to the caller: the raw result, its
// type tag and a textual encoding suitable for display or transport.
type Reply interface {
	Content() any
	Type() ReplyType
	Encoding() []byte
}

type BoolReply struct {
	val bool
}

func (r BoolReply) Content() any {
	return r.val
}

func (r BoolReply) Type() ReplyType {
	return BoolReplyType
}

func (r BoolReply) Encoding() []byte {
	if r.val {
		return []byte("true")
	}
	return []byte("false")
}

type IntReply struct {
	val uint64
}

func (r IntReply) Content() any {
	return r.val
}

func (r IntReply) Type() ReplyType {
	return IntReplyType
}

func (r IntReply) Encoding() []byte {
	return strconv.AppendUint(nil, r.val, 10)
}

type SetReply struct {
	val *set.IntSet
}

func (r SetReply) Content() any {
	return r.val
}

func (r SetReply) Type() ReplyType {
	return SetReplyType
}

func (r SetReply) Encoding() []byte {
	return []byte(codec.Render(r.val))
}

type ErrReply struct {
	err error
}

func (r ErrReply) Content() any {
	return r.err
}

func (r ErrReply) Type() ReplyType {
	return ErrReplyType
}

func (r ErrReply) Encoding() []byte {
	return []byte("ERR " + r.err.Error())
}

var (
	SharedTrueReply     = BoolReply{val: true}
	SharedFalseReply    = BoolReply{val: false}
	SharedEmptySetReply = SetReply{val: set.Empty}
)
