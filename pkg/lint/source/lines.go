package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/leapstack-labs/dotenv-linter/pkg/lint"
)

// ReadLines reads the file at path and splits it into line entries.
func ReadLines(path string) ([]lint.LineEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return SplitLines(path, string(content)), nil
}

// SplitLines splits content on '\n' and strips a trailing '\r' from each line.
// Content that ends with a newline yields a final blank entry; empty content
// yields no entries.
func SplitLines(path, content string) []lint.LineEntry {
	if content == "" {
		return nil
	}

	raws := strings.Split(content, "\n")
	lines := make([]lint.LineEntry, 0, len(raws))
	file := lint.FileEntry{Path: path, TotalLines: len(raws)}
	for i, raw := range raws {
		lines = append(lines, lint.LineEntry{
			Number: i + 1,
			File:   file,
			Raw:    strings.TrimSuffix(raw, "\r"),
		})
	}
	return lines
}
