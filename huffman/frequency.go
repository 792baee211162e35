// Package huffman implements a static Huffman encoder.
// It counts symbol frequencies, builds a prefix-code tree by greedily
// merging the two least frequent nodes, assigns codes and packs the
// encoded bits into bytes.
//
// The packed output carries no header or code table, so it cannot be
// decoded on its own.
package huffman

// Symbol is one unit of input.
type Symbol = byte

// FrequencyTable holds the occurrence count of every symbol in an input.
// It is immutable after Analyze returns.
type FrequencyTable struct {
	counts [256]uint64
	order  []Symbol // Distinct symbols in first-seen order
	total  uint64
}

// Analyze counts the occurrences of each symbol in input.
// An empty input yields an empty table.
func Analyze(input []byte) *FrequencyTable {
	ft := &FrequencyTable{}
	for _, s := range input {
		if ft.counts[s] == 0 {
			ft.order = append(ft.order, s)
		}
		ft.counts[s]++
	}
	ft.total = uint64(len(input))
	return ft
}

// Len returns the number of distinct symbols.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Count returns the number of occurrences of s.
func (ft *FrequencyTable) Count(s Symbol) uint64 {
	return ft.counts[s]
}

// Symbols returns the distinct symbols in the order they first appeared.
func (ft *FrequencyTable) Symbols() []Symbol {
	return append([]Symbol(nil), ft.order...)
}

// Total returns the sum of all counts, which equals the input length.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}
