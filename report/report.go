// Package report turns a compression result into the numbers shown to a
// user and into a protobuf message for machine consumers.
package report

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/egonelbre/exp-huffman-compression/huffman"
)

const (
	// Filename is the name the packed artifact is saved under.
	Filename = "compressed.bin"
	// ContentType is the media type of the packed artifact.
	ContentType = "application/octet-stream"
)

const megabyte = 1024 * 1024

// Report summarizes one compression run.
type Report struct {
	OriginalBits     int
	CompressedBits   int
	ReductionPercent float64
	DistinctSymbols  int
	EntropyBits      float64
	PackedBytes      int    // Length of the packed artifact
	Checksum         uint64 // xxhash64 of the packed artifact
}

// New creates a report for res, whose packed form is packed.
func New(res *huffman.Result, packed []byte) *Report {
	return &Report{
		OriginalBits:     res.Stats.OriginalBits,
		CompressedBits:   res.Stats.CompressedBits,
		ReductionPercent: res.Stats.ReductionPercent,
		DistinctSymbols:  res.Stats.DistinctSymbols,
		EntropyBits:      res.Stats.EntropyBits,
		PackedBytes:      len(packed),
		Checksum:         xxhash.Sum64(packed),
	}
}

// OriginalBytes returns the input size in bytes.
func (r *Report) OriginalBytes() float64 {
	return float64(r.OriginalBits) / 8
}

// CompressedBytes returns the encoded bit count divided by 8.
// It is fractional when the bitstream does not fill its last byte.
func (r *Report) CompressedBytes() float64 {
	return float64(r.CompressedBits) / 8
}

// OriginalMB returns the input size in mebibytes.
func (r *Report) OriginalMB() float64 { return r.OriginalBytes() / megabyte }

// CompressedMB returns the unpadded encoded size in mebibytes.
func (r *Report) CompressedMB() float64 { return r.CompressedBytes() / megabyte }

// Lines returns the human readable report.
func (r *Report) Lines() []string {
	return []string{
		fmt.Sprintf("Original Size: %.4f MB", r.OriginalMB()),
		fmt.Sprintf("Compressed Size: %.4f MB", r.CompressedMB()),
		fmt.Sprintf("Size Reduced by: %.2f%%", r.ReductionPercent),
	}
}

func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}
