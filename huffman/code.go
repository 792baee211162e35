package huffman

import (
	"fmt"
	"strings"
)

// maxCodeLen is the longest code that fits into Code.Bits.
const maxCodeLen = 64

// Code is a prefix code stored in the low Len bits of Bits,
// most significant bit first.
type Code struct {
	Bits uint64
	Len  uint8
}

// append returns c extended by one bit.
func (c Code) append(bit uint64) Code {
	return Code{Bits: c.Bits<<1 | bit&1, Len: c.Len + 1}
}

// Bit returns the i-th bit of the code, counting from the first emitted bit.
func (c Code) Bit(i int) uint8 {
	return uint8(c.Bits>>(int(c.Len)-1-i)) & 1
}

// String renders the code as binary digits, e.g. "101".
func (c Code) String() string {
	var b strings.Builder
	b.Grow(int(c.Len))
	for i := 0; i < int(c.Len); i++ {
		b.WriteByte('0' + c.Bit(i))
	}
	return b.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	return c.Bits>>(c.Len-p.Len) == p.Bits
}

// CodeTable maps every symbol of an input to its prefix code.
type CodeTable map[Symbol]Code

// GenerateCodes derives the code table from a Huffman tree.
// Going left appends 0 and going right appends 1. A tree consisting of a
// single leaf assigns that symbol the code "0", so codes are never empty.
// A nil root yields an empty table.
func GenerateCodes(root *Node) (CodeTable, error) {
	codes := make(CodeTable)
	if root == nil {
		return codes, nil
	}

	type frame struct {
		node *Node
		code Code
	}

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.IsLeaf() {
			code := top.code
			if code.Len == 0 {
				code = Code{Bits: 0, Len: 1}
			}
			codes[top.node.Symbol] = code
			continue
		}

		if top.code.Len >= maxCodeLen {
			return nil, fmt.Errorf("code deeper than %d bits: %w", maxCodeLen, ErrCodeTooLong)
		}

		// Right is pushed first so the left subtree is visited first.
		stack = append(stack,
			frame{node: top.node.Right, code: top.code.append(1)},
			frame{node: top.node.Left, code: top.code.append(0)},
		)
	}

	return codes, nil
}
