package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

const (
	VM_EXT   = ".vm"
	ASM_EXT  = ".asm"
	HACK_EXT = ".hack"
)

// source is one .vm file, read into memory.
type source struct {
	Path string
	Unit string
	Data []byte
}

// unitName derives the translation unit name from a file path.
func unitName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// findSources reads a single .vm file, or every .vm file in a directory
// sorted by name.
func findSources(path string) (sources []source, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "stat failed")
	}

	paths := []string{path}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, errors.Wrap(err, "read directory failed")
		}
		paths = paths[:0]
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != VM_EXT {
				continue
			}
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
		slices.Sort(paths)
		if len(paths) == 0 {
			return nil, errors.Errorf("%v: no %v files", path, VM_EXT)
		}
	}

	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrap(err, "read failed")
		}
		sources = append(sources, source{Path: p, Unit: unitName(p), Data: data})
	}

	return
}

// outputPath derives the output file for an input path: Foo.vm becomes
// Foo.asm, and a directory Dir becomes Dir/Dir.asm.
func outputPath(path string, ext string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrap(err, "stat failed")
	}

	if info.IsDir() {
		clean := filepath.Clean(path)
		abs, err := filepath.Abs(clean)
		if err != nil {
			return "", errors.Wrap(err, "absolute path failed")
		}
		return filepath.Join(clean, filepath.Base(abs)+ext), nil
	}

	return strings.TrimSuffix(path, filepath.Ext(path)) + ext, nil
}
