// Package artifacts persists pipeline outputs and per-stage debug artifacts
// to the local filesystem.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Artifact records a single file written during a pipeline run.
type Artifact struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Bytes   int       `json:"bytes"`
	SavedAt time.Time `json:"saved_at"`
}

// Store writes artifacts under a single output directory and keeps a
// manifest of everything written during the run.
type Store struct {
	dir      string
	runID    uuid.UUID
	manifest []Artifact
	log      zerolog.Logger
}

// NewStore creates a store rooted at dir, creating the directory on demand.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return &Store{
		dir:   dir,
		runID: uuid.New(),
		log:   log.With().Str("component", "artifacts").Logger(),
	}, nil
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.dir
}

// RunID returns the identifier for this pipeline run.
func (s *Store) RunID() uuid.UUID {
	return s.runID
}

// Save writes content to <dir>/<name>.<ext> and records it in the manifest.
func (s *Store) Save(content, name, ext string) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%s.%s", name, ext))

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}

	s.manifest = append(s.manifest, Artifact{
		Name:    name,
		Path:    path,
		Bytes:   len(content),
		SavedAt: time.Now(),
	})

	s.log.Info().Str("path", path).Int("bytes", len(content)).Msg("artifact saved")
	return path, nil
}

// Manifest returns the artifacts written so far.
func (s *Store) Manifest() []Artifact {
	return s.manifest
}

// WriteManifest persists a run.json describing the run and every artifact
// written, so partial progress stays inspectable after a failure.
func (s *Store) WriteManifest() error {
	manifest := struct {
		RunID     uuid.UUID  `json:"run_id"`
		WrittenAt time.Time  `json:"written_at"`
		Artifacts []Artifact `json:"artifacts"`
	}{
		RunID:     s.runID,
		WrittenAt: time.Now(),
		Artifacts: s.manifest,
	}

	raw, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode run manifest: %w", err)
	}

	path := filepath.Join(s.dir, "run.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write run manifest: %w", err)
	}

	return nil
}

// Timestamp returns the filename-safe timestamp used for output names.
func Timestamp(t time.Time) string {
	return t.Format("20060102_150405")
}
