package huffman

import (
	"math/rand"
	"strings"
	"testing"
)

func repeatText(text string, size int) string {
	if len(text) >= size {
		return text[:size]
	}
	return strings.Repeat(text, size/len(text)+1)[:size]
}

// BenchmarkCompress benchmarks the full pipeline on English text of various sizes.
func BenchmarkCompress(b *testing.B) {
	text := "The quick brown fox jumps over the lazy dog. This is a test of compression performance. "

	benchmarks := []struct {
		name string
		data []byte
	}{
		{"Small_100B", []byte(repeatText(text, 100))},
		{"Medium_1KB", []byte(repeatText(text, 1024))},
		{"Large_10KB", []byte(repeatText(text, 10*1024))},
		{"VeryLarge_100KB", []byte(repeatText(text, 100*1024))},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(bm.data)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Compress(bm.data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkBuildTree benchmarks tree construction on a full byte alphabet.
func BenchmarkBuildTree(b *testing.B) {
	rng := rand.New(rand.NewSource(12345))
	ft := Analyze(randomData(rng, 1<<16, 256))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BuildTree(ft); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPack benchmarks packing an encoded 100KB text.
func BenchmarkPack(b *testing.B) {
	data := []byte(repeatText("The quick brown fox jumps over the lazy dog. ", 100*1024))
	res, err := Compress(data)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64((res.Bitstream.Len() + 7) / 8))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Pack(res.Bitstream); err != nil {
			b.Fatal(err)
		}
	}
}
