package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverOptions controls how paths are expanded into env files.
type DiscoverOptions struct {
	Recursive bool     // Descend into subdirectories
	Exclude   []string // Files or directories to leave out
}

// IsEnvFile reports whether the base name looks like an env file:
// ".env", ".env.local", "production.env" and so on.
func IsEnvFile(name string) bool {
	base := filepath.Base(name)
	return strings.HasPrefix(base, ".env") || strings.HasSuffix(base, ".env")
}

// Discover expands paths into a sorted, de-duplicated list of env files.
// Files named explicitly are kept even if their name does not look like an
// env file; directories contribute only env files.
func Discover(ctx context.Context, paths []string, opts DiscoverOptions) ([]string, error) {
	excluded := make(map[string]bool, len(opts.Exclude))
	for _, p := range opts.Exclude {
		excluded[absPath(p)] = true
	}
	isExcluded := func(p string) bool {
		return excluded[absPath(p)]
	}

	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if isExcluded(p) || seen[absPath(p)] {
			return
		}
		seen[absPath(p)] = true
		files = append(files, p)
	}

	for _, root := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		if isExcluded(root) {
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path == root {
					return nil
				}
				if !opts.Recursive || isExcluded(path) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && IsEnvFile(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// absPath returns the absolute form of p so relative and absolute spellings
// of the same path compare equal.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
