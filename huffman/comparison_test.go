package huffman

import (
	"math/rand"
	"testing"

	"github.com/klauspost/compress/huff0"
	"github.com/klauspost/compress/zstd"
)

// TestCompressionAgainstReferenceCoders logs the packed size next to
// klauspost's huff0 and zstd. huff0 spends extra bytes on its table and
// limits code lengths, so the bare packed payload must not be larger.
func TestCompressionAgainstReferenceCoders(t *testing.T) {
	sampleText := "The quick brown fox jumps over the lazy dog. " +
		"This is a comprehensive test of the static Huffman encoder. " +
		"Common English letters like 'e', 't', 'a', 'o', 'i', 'n', and 's' " +
		"should receive the shortest codes. "

	rng := rand.New(rand.NewSource(12345))
	skewed := make([]byte, 16*1024)
	for i := range skewed {
		// Geometric-like distribution over a small alphabet.
		v := 0
		for v < 20 && rng.Intn(3) != 0 {
			v++
		}
		skewed[i] = byte('a' + v)
	}

	testCases := []struct {
		name string
		data []byte
	}{
		{"English 1KB", []byte(repeatText(sampleText, 1024))},
		{"English 10KB", []byte(repeatText(sampleText, 10*1024))},
		{"Skewed 16KB", skewed},
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd.NewWriter failed: %v", err)
	}
	defer enc.Close()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Compress(tc.data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			packed, err := res.Packed()
			if err != nil {
				t.Fatalf("Packed failed: %v", err)
			}

			zstdSize := len(enc.EncodeAll(tc.data, nil))

			huffOut, _, err := huff0.Compress1X(tc.data, nil)
			if err != nil {
				t.Logf("huff0 declined: %v", err)
			} else if len(packed) > len(huffOut) {
				t.Errorf("Packed %d bytes, huff0 produced %d", len(packed), len(huffOut))
			}

			t.Logf("Original: %d bytes, Huffman: %d bytes (%.2f%% reduction), huff0: %d bytes, zstd: %d bytes",
				len(tc.data), len(packed), res.Stats.ReductionPercent, len(huffOut), zstdSize)
		})
	}
}
