package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/quadkit/ctrlkit/internal/matrix"
)

// IDGenerator produces snapshot identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 snapshot IDs, so a
// directory listing of snapshots sorts by creation time.
//
// Thread-safety: stateless, safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 as a hyphenated string. Panics if UUID
// generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined IDs for deterministic tests.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that yields the given IDs in
// order. Panics when the sequence is exhausted.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined ID.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		panic("config: FixedGenerator exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// Snapshot is the exported form of a validated profile. Matrix data is
// normalized (re-rendered from the parsed values), so two snapshots of
// the same profile compare equal regardless of the source file's
// spacing.
type Snapshot struct {
	ID        string             `yaml:"id"`
	Profile   string             `yaml:"profile"`
	CreatedAt string             `yaml:"created_at"`
	Gains     map[string]float64 `yaml:"gains,omitempty"`
	Matrices  []MatrixField      `yaml:"matrices,omitempty"`
}

// SnapshotResult describes a snapshot written to disk.
type SnapshotResult struct {
	ID        string `json:"id"`
	Profile   string `json:"profile"`
	Path      string `json:"path"`
	Checksum  string `json:"checksum"`
	CreatedAt string `json:"created_at"`
}

// ExportSnapshot validates p, writes its snapshot into dir as
// <name>-<id>.yaml, and returns the written path together with the
// file's SHA-256 checksum.
//
// The profile must validate cleanly; any validation error aborts the
// export before anything is written.
func ExportSnapshot(p *Profile, dir string, clock Clock, gen IDGenerator) (*SnapshotResult, error) {
	if errs := p.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("export snapshot: profile invalid: %v", errs[0])
	}

	snap := Snapshot{
		ID:        gen.Generate(),
		Profile:   p.Name,
		CreatedAt: Timestamp(clock),
		Gains:     p.Gains,
	}
	for _, mf := range p.Matrices {
		m, err := matrix.Parse(mf.Data, mf.Rows, mf.Cols)
		if err != nil {
			// Unreachable after Validate, but kept as a guard.
			return nil, fmt.Errorf("export snapshot: %w", err)
		}
		snap.Matrices = append(snap.Matrices, MatrixField{
			Name: mf.Name,
			Rows: mf.Rows,
			Cols: mf.Cols,
			Data: m.String(),
		})
	}

	out, err := yaml.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("export snapshot: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%s.yaml", p.Name, snap.ID))
	if err := WriteStringToFile(path, string(out)); err != nil {
		return nil, fmt.Errorf("export snapshot: %w", err)
	}

	sum := sha256.Sum256(out)
	return &SnapshotResult{
		ID:        snap.ID,
		Profile:   snap.Profile,
		Path:      path,
		Checksum:  hex.EncodeToString(sum[:]),
		CreatedAt: snap.CreatedAt,
	}, nil
}
