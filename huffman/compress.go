package huffman

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is returned when a tree is requested for an empty frequency table.
	ErrInvalidInput = errors.New("huffman: invalid input")
	// ErrUnknownSymbol is returned when a symbol has no entry in the code table.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")
	// ErrCodeTooLong is returned when a code does not fit into 64 bits.
	ErrCodeTooLong = errors.New("huffman: code too long")
)

// Result is the outcome of compressing one input.
type Result struct {
	Frequencies *FrequencyTable
	Codes       CodeTable
	Bitstream   *Bitstream
	Stats       Stats
}

// Packed returns the bitstream grouped into zero-padded bytes.
func (r *Result) Packed() ([]byte, error) {
	return Pack(r.Bitstream)
}

// Stats describes the size of the encoded data relative to the input.
type Stats struct {
	OriginalBits     int     // 8 bits per input symbol
	CompressedBits   int     // Length of the encoded bitstream
	ReductionPercent float64 // 0 for empty input
	DistinctSymbols  int
	EntropyBits      float64 // Shannon lower bound for a symbol-by-symbol code
}

// AverageCodeLength returns the mean number of bits spent per input symbol.
func (s Stats) AverageCodeLength() float64 {
	if s.OriginalBits == 0 {
		return 0
	}
	return float64(s.CompressedBits) / float64(s.OriginalBits/8)
}

// Compress builds a Huffman code for input and encodes it.
//
// An empty input produces an empty bitstream and code table without
// building a tree. Either a complete result or an error is returned.
func Compress(input []byte) (*Result, error) {
	ft := Analyze(input)
	if ft.Len() == 0 {
		return &Result{
			Frequencies: ft,
			Codes:       CodeTable{},
			Bitstream:   &Bitstream{},
		}, nil
	}

	root, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}

	codes, err := GenerateCodes(root)
	if err != nil {
		return nil, fmt.Errorf("generate codes: %w", err)
	}

	bs, err := Encode(input, codes)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Frequencies: ft,
		Codes:       codes,
		Bitstream:   bs,
		Stats:       computeStats(ft, bs),
	}, nil
}

func computeStats(ft *FrequencyTable, bs *Bitstream) Stats {
	original := int(ft.Total()) * 8
	compressed := bs.Len()

	stats := Stats{
		OriginalBits:    original,
		CompressedBits:  compressed,
		DistinctSymbols: ft.Len(),
		EntropyBits:     entropyBits(ft),
	}
	if original > 0 {
		stats.ReductionPercent = float64(original-compressed) / float64(original) * 100
	}
	return stats
}

// entropyBits returns the order-0 entropy of the table times the input length.
func entropyBits(ft *FrequencyTable) float64 {
	total := float64(ft.Total())
	var bits float64
	for _, s := range ft.order {
		c := float64(ft.counts[s])
		bits -= c * math.Log2(c/total)
	}
	return bits
}
