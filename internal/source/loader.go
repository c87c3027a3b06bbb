package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	vlog "github.com/futureCreator/docuflux/internal/log"
)

// LoadGlob expands a glob pattern and reads every match: files directly,
// directories recursively. Unreadable matches are skipped with a warning.
func LoadGlob(pattern string) ([]Item, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expanding glob %q: %w", pattern, err)
	}

	var items []Item
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			vlog.Warn("could not stat glob match", "path", match, "err", err)
			continue
		}
		if info.IsDir() {
			items = append(items, readTree(match)...)
			continue
		}
		if it, err := readFile(match); err == nil {
			items = append(items, it)
		}
	}
	return items, nil
}

// LoadPath reads a direct filesystem path: a file is read as-is, a directory
// is traversed recursively. A nonexistent path is an error for the caller to
// record; it never aborts the run.
func LoadPath(p string) ([]Item, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("path not found: %s", p)
	}
	if info.IsDir() {
		return readTree(p), nil
	}
	it, err := readFile(p)
	if err != nil {
		return nil, err
	}
	return []Item{it}, nil
}

// readTree enumerates all extensioned files under root, in directory
// traversal order (not guaranteed sorted). Per-file failures are skipped.
func readTree(root string) []Item {
	var items []Item
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			vlog.Warn("could not traverse", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(d.Name()) == "" {
			return nil
		}
		if it, err := readFile(path); err == nil {
			items = append(items, it)
		}
		return nil
	})
	return items
}

func readFile(path string) (Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		vlog.Warn("could not read file", "path", path, "err", err)
		return Item{}, err
	}
	return Item{Identifier: path, Content: string(data)}, nil
}
