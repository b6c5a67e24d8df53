// Package assets finds and publishes the static files served next to the
// page: images, the resume, favicons.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// File is one publishable asset.
type File struct {
	Path    string // absolute path on disk
	RelPath string // slash-separated path relative to the assets root
	Size    int64
}

// Collect walks root and returns every regular file the filter allows, in
// lexical order. A missing root yields no files.
func Collect(root string, filter Filter) ([]File, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve root: %w", err)
	}
	if _, err := os.Stat(abs); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	var files []File
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != abs && excludedName(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return nil
		}
		if !filter.Allowed(rel) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, File{
			Path:    path,
			RelPath: filepath.ToSlash(rel),
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: traversal: %w", err)
	}
	return files, nil
}

// Copy writes f under dstRoot, preserving its relative path. It reports
// false without writing when the destination already holds identical
// content.
func Copy(f File, dstRoot string) (bool, error) {
	dst := filepath.Join(dstRoot, filepath.FromSlash(f.RelPath))

	if same, err := sameContent(f.Path, dst); err == nil && same {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}

	src, err := os.Open(f.Path)
	if err != nil {
		return false, err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return false, fmt.Errorf("copying %s: %w", f.RelPath, err)
	}
	return true, out.Close()
}

func sameContent(a, b string) (bool, error) {
	ha, err := hashFile(a)
	if err != nil {
		return false, err
	}
	hb, err := hashFile(b)
	if err != nil {
		return false, err
	}
	return ha == hb, nil
}

// hashFile computes the SHA-256 digest of the given file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
