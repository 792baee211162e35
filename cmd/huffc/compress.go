package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/egonelbre/exp-huffman-compression/config"
	"github.com/egonelbre/exp-huffman-compression/huffman"
	"github.com/egonelbre/exp-huffman-compression/report"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// compressFile compresses the file at path, saves the packed artifact to
// cfg.Output and prints the report to out.
func compressFile(cfg config.Configuration, path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	res, err := huffman.Compress(data)
	if err != nil {
		return fmt.Errorf("compress %s: %w", path, err)
	}
	packed, err := res.Packed()
	if err != nil {
		return fmt.Errorf("compress %s: %w", path, err)
	}

	if err := os.WriteFile(cfg.Output, packed, 0o644); err != nil {
		return fmt.Errorf("save artifact: %w", err)
	}

	rep := report.New(res, packed)
	if cfg.Report != "" {
		pb, err := rep.MarshalProto()
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if err := os.WriteFile(cfg.Report, pb, 0o644); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, render(path, rep))
	}
	return nil
}

func render(path string, rep *report.Report) string {
	body := titleStyle.Render(path) + "\n" + rep.String() +
		fmt.Sprintf("\nSaved %d bytes (xxh64 %016x)", rep.PackedBytes, rep.Checksum)
	return boxStyle.Render(body)
}
