package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Manifest describes one batch run.
type Manifest struct {
	RunID         string          `json:"run_id"`
	Created       time.Time       `json:"created"`
	Method        string          `json:"method"`
	Premultiplied bool            `json:"premultiplied"`
	Entries       []ManifestEntry `json:"entries"`
}

// ManifestEntry represents one source file in the output manifest.
type ManifestEntry struct {
	Source  string   `json:"source"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	Outputs []Output `json:"outputs,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// NewManifest builds a manifest with a fresh run id. Paths are made
// relative to the input and output directories.
func NewManifest(cfg Config, results []Result) Manifest {
	m := Manifest{
		RunID:         uuid.NewString(),
		Created:       time.Now().UTC(),
		Method:        cfg.Method.String(),
		Premultiplied: cfg.Premultiply,
		Entries:       make([]ManifestEntry, len(results)),
	}
	for i, r := range results {
		e := ManifestEntry{
			Source: filepath.ToSlash(relTo(cfg.InputDir, r.Source)),
			Width:  r.Width,
			Height: r.Height,
			Error:  r.Error,
		}
		for _, o := range r.Outputs {
			o.Path = filepath.ToSlash(relTo(cfg.OutputDir, o.Path))
			e.Outputs = append(e.Outputs, o)
		}
		m.Entries[i] = e
	}
	return m
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func relTo(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		return rel
	}
	return path
}
