// Package adapter contains filesystem and persistence adapters for the hellfloat CLI.
package adapter

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

// artifactPerm is the mode of a finished artifact.
const artifactPerm os.FileMode = 0o644

// WriteResult describes a finished atomic write.
type WriteResult struct {
	Bytes  int64
	SHA256 string
}

// CorpusFSAdapter abstracts the filesystem operations the domain layer needs
// to publish and re-read corpus artifacts, so the workflow can be tested
// without touching the disk.
type CorpusFSAdapter interface {
	// WriteAtomic streams content produced by write into a temporary file next
	// to path and renames it over path only when write and sync succeed. On
	// failure path is left untouched.
	WriteAtomic(path m.Path, write func(w io.Writer) error) (WriteResult, error)

	// ReadLines loads every line of the file at path without line
	// terminators. terminated reports whether the file ends with '\n'.
	ReadLines(path m.Path) (lines []string, terminated bool, err error)

	// HashFile returns the hex SHA-256 of the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalCorpusFSAdapter is the os-backed CorpusFSAdapter.
type LocalCorpusFSAdapter struct{}

// NewLocalCorpusFSAdapter constructs a LocalCorpusFSAdapter.
func NewLocalCorpusFSAdapter() *LocalCorpusFSAdapter {
	return &LocalCorpusFSAdapter{}
}

// hashingWriter counts and hashes everything written through it.
type hashingWriter struct {
	w     io.Writer
	h     hash.Hash
	count int64
}

func (hw *hashingWriter) Write(p []byte) (int, error) {
	n, err := hw.w.Write(p)
	hw.count += int64(n)
	_, _ = hw.h.Write(p[:n])

	return n, err
}

// WriteAtomic writes through a temp file in the destination directory and
// renames it into place.
func (a *LocalCorpusFSAdapter) WriteAtomic(path m.Path, write func(w io.Writer) error) (WriteResult, error) {
	target := string(path)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return WriteResult{}, fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return WriteResult{}, fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	hw := &hashingWriter{w: tmp, h: sha256.New()}
	if err := write(hw); err != nil {
		return WriteResult{}, err
	}

	if err := tmp.Sync(); err != nil {
		return WriteResult{}, fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return WriteResult{}, fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, artifactPerm); err != nil {
		return WriteResult{}, fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return WriteResult{}, fmt.Errorf("rename into place: %w", err)
	}

	committed = true

	return WriteResult{
		Bytes:  hw.count,
		SHA256: hex.EncodeToString(hw.h.Sum(nil)),
	}, nil
}

// ReadLines loads the file at path line by line.
func (a *LocalCorpusFSAdapter) ReadLines(path m.Path) ([]string, bool, error) {
	// #nosec G304 - path is the artifact the user asked to verify
	f, err := os.Open(string(path))
	if err != nil {
		return nil, false, err
	}

	defer func() { _ = f.Close() }()

	reader := bufio.NewReaderSize(f, 1<<16)

	var lines []string

	for {
		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			if line == "" {
				return lines, true, nil
			}

			return append(lines, line), false, nil
		}

		if err != nil {
			return nil, false, err
		}

		lines = append(lines, line[:len(line)-1])
	}
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalCorpusFSAdapter) HashFile(path m.Path) (string, error) {
	// #nosec G304 - path is the artifact the user asked to verify
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalCorpusFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
