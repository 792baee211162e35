package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/egonelbre/exp-huffman-compression/config"
	"github.com/egonelbre/exp-huffman-compression/report"
)

func TestCompressFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(input, []byte("aaabbc"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := config.Default()
	cfg.Output = filepath.Join(dir, report.Filename)
	cfg.Report = filepath.Join(dir, "report.pb")

	var out bytes.Buffer
	if err := compressFile(cfg, input, &out); err != nil {
		t.Fatalf("compressFile failed: %v", err)
	}

	artifact, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(artifact, []byte{0x1F, 0x00}) {
		t.Errorf("Expected artifact 1f00, got %x", artifact)
	}

	pb, err := os.ReadFile(cfg.Report)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	rep, err := report.UnmarshalProto(pb)
	if err != nil {
		t.Fatalf("UnmarshalProto failed: %v", err)
	}
	if rep.CompressedBits != 9 {
		t.Errorf("Expected 9 compressed bits, got %d", rep.CompressedBits)
	}

	for _, want := range []string{"Original Size:", "Compressed Size:", "Size Reduced by: 81.25%"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Output missing %q:\n%s", want, out.String())
		}
	}
}

func TestCompressFileQuiet(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(input, nil, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := config.Default()
	cfg.Output = filepath.Join(dir, "out.bin")
	cfg.Quiet = true

	var out bytes.Buffer
	if err := compressFile(cfg, input, &out); err != nil {
		t.Fatalf("compressFile failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}

	artifact, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(artifact) != 0 {
		t.Errorf("Expected empty artifact, got %x", artifact)
	}
}

func TestCompressFileUnreadable(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output = filepath.Join(dir, "out.bin")

	err := compressFile(cfg, filepath.Join(dir, "missing.txt"), &bytes.Buffer{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Expected not-exist error, got %v", err)
	}

	if _, err := os.Stat(cfg.Output); !errors.Is(err, fs.ErrNotExist) {
		t.Error("No artifact must be written when the input cannot be read")
	}
}
