package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Bitstream is an ordered sequence of bits.
type Bitstream struct {
	words []uint64 // Bits packed MSB first, 64 per word
	n     int
}

// Len returns the number of bits in the stream.
func (bs *Bitstream) Len() int {
	return bs.n
}

// Bit returns the i-th bit of the stream.
func (bs *Bitstream) Bit(i int) uint8 {
	if i < 0 || i >= bs.n {
		panic("bit index out of range")
	}
	return uint8(bs.words[i/64]>>(63-i%64)) & 1
}

// Append adds the bits of c to the end of the stream.
func (bs *Bitstream) Append(c Code) {
	for i := 0; i < int(c.Len); i++ {
		bs.appendBit(uint64(c.Bit(i)))
	}
}

func (bs *Bitstream) appendBit(bit uint64) {
	if bs.n%64 == 0 {
		bs.words = append(bs.words, 0)
	}
	bs.words[bs.n/64] |= (bit & 1) << (63 - bs.n%64)
	bs.n++
}

// String renders the stream as binary digits.
func (bs *Bitstream) String() string {
	var b strings.Builder
	b.Grow(bs.n)
	for i := 0; i < bs.n; i++ {
		b.WriteByte('0' + bs.Bit(i))
	}
	return b.String()
}

// Encode concatenates the codes of the input symbols in input order.
// It fails with ErrUnknownSymbol when a symbol has no code.
func Encode(input []byte, codes CodeTable) (*Bitstream, error) {
	var lookup [256]Code
	var known [256]bool
	for s, c := range codes {
		lookup[s] = c
		known[s] = true
	}

	bs := &Bitstream{}
	for i, s := range input {
		if !known[s] {
			return nil, fmt.Errorf("symbol %q at position %d: %w", s, i, ErrUnknownSymbol)
		}
		bs.Append(lookup[s])
	}
	return bs, nil
}

// Pack groups the bits into bytes, most significant bit first.
// The final byte is padded with zero bits. The bit length is not recorded.
func Pack(bs *Bitstream) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((bs.n + 7) / 8)

	w := bitio.NewWriter(&buf)
	full := bs.n / 64
	for i := 0; i < full; i++ {
		w.TryWriteBits(bs.words[i], 64)
	}
	if rem := bs.n % 64; rem > 0 {
		w.TryWriteBits(bs.words[full]>>(64-rem), uint8(rem))
	}
	if w.TryError != nil {
		return nil, fmt.Errorf("pack bits: %w", w.TryError)
	}

	// Close pads the last partial byte with zeros.
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("pack bits: %w", err)
	}
	return buf.Bytes(), nil
}
