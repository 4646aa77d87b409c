package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/topogen/pkg/buildinfo"
	perrors "github.com/matzehuels/topogen/pkg/errors"
)

// Manifest records what a generation run wrote.
type Manifest struct {
	RunID     string      `json:"run_id"`
	Seed      uint64      `json:"seed"`
	Version   string      `json:"version"`
	CreatedAt time.Time   `json:"created_at"`
	Cases     []CaseEntry `json:"cases"`
}

// CaseEntry describes one generated test.
type CaseEntry struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Topology       string `json:"topology"`
	Seed           uint64 `json:"seed"`
	Nodes          int    `json:"nodes"`
	Edges          int    `json:"edges"`
	PromptSHA256   string `json:"prompt_sha256"`
	SolutionSHA256 string `json:"solution_sha256"`
}

// NewManifest starts a manifest for a run with the given seed.
func NewManifest(seed uint64) *Manifest {
	return &Manifest{
		RunID:     uuid.NewString(),
		Seed:      seed,
		Version:   buildinfo.Version,
		CreatedAt: time.Now().UTC(),
		Cases:     []CaseEntry{},
	}
}

// IDs returns the ids of the recorded cases in order.
func (m *Manifest) IDs() []int {
	ids := make([]int, len(m.Cases))
	for i, c := range m.Cases {
		ids[i] = c.ID
	}
	return ids
}

// WriteManifest encodes m as indented JSON.
func WriteManifest(w io.Writer, m *Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// DecodeManifest reads a manifest written by WriteManifest.
func DecodeManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "decode manifest")
	}
	if _, err := uuid.Parse(m.RunID); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "manifest run id %q", m.RunID)
	}
	return &m, nil
}

// ReadManifest loads a manifest file.
func ReadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perrors.Wrap(perrors.ErrCodeNotFound, err, "manifest %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeManifest(f)
}
