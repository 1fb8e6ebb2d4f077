package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

// ManifestSuffix is appended to an artifact path to locate its manifest.
const ManifestSuffix = ".manifest.yaml"

// ErrManifestNotFound is returned when an artifact has no manifest.
var ErrManifestNotFound = errors.New("manifest not found")

// ManifestStore persists and retrieves run manifests.
type ManifestStore interface {
	SaveManifest(output m.Path, manifest m.Manifest) error
	LoadManifest(output m.Path) (m.Manifest, error)
	// DeleteManifest removes the manifest of output. A missing manifest is
	// not an error.
	DeleteManifest(output m.Path) error
}

// LocalManifestStore keeps manifests as YAML files next to their artifact.
type LocalManifestStore struct {
	fs CorpusFSAdapter
}

// NewManifestStore constructs a ManifestStore that writes through fs.
func NewManifestStore(fs CorpusFSAdapter) ManifestStore {
	return &LocalManifestStore{fs: fs}
}

// ManifestPath returns the manifest location for an artifact.
func ManifestPath(output m.Path) m.Path {
	return output + ManifestSuffix
}

// SaveManifest encodes manifest as YAML and writes it atomically.
func (s *LocalManifestStore) SaveManifest(output m.Path, manifest m.Manifest) error {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(manifest); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	_, err := s.fs.WriteAtomic(ManifestPath(output), func(w io.Writer) error {
		_, err := w.Write(buf.Bytes())
		return err
	})
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// LoadManifest reads the manifest stored next to output.
func (s *LocalManifestStore) LoadManifest(output m.Path) (m.Manifest, error) {
	path := ManifestPath(output)

	data, err := os.ReadFile(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return m.Manifest{}, fmt.Errorf("%s: %w", path, ErrManifestNotFound)
		}

		return m.Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if manifest.Version != m.ManifestVersion {
		return m.Manifest{}, fmt.Errorf("manifest %s has version %d, want %d", path, manifest.Version, m.ManifestVersion)
	}

	return manifest, nil
}

// DeleteManifest removes the manifest stored next to output, if any.
func (s *LocalManifestStore) DeleteManifest(output m.Path) error {
	err := os.Remove(string(ManifestPath(output)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete manifest: %w", err)
	}

	return nil
}
