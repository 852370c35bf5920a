package export

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vk/polygraingo/internal/grain"
	"github.com/vk/polygraingo/internal/pipeline"
)

// Manifest records how a structure was assembled: the run identity, the box,
// and each phase's geometry, grain-id range, and seed coordinates. It is the
// durable record of the grain-id partition.
type Manifest struct {
	RunID  string          `yaml:"run_id"`
	Box    [3]float64      `yaml:"box"`
	Seed   int64           `yaml:"rng_seed"`
	Output string          `yaml:"output"`
	Phases []ManifestPhase `yaml:"phases"`
}

// ManifestPhase is one phase's entry in the manifest.
type ManifestPhase struct {
	Name      string         `yaml:"name"`
	Structure string         `yaml:"structure,omitempty"`
	Amorphous bool           `yaml:"amorphous,omitempty"`
	Grains    int            `yaml:"grains"`
	IDRange   string         `yaml:"id_range"`
	Seeds     []ManifestSeed `yaml:"seeds"`
}

// ManifestSeed is one grain nucleus in the manifest.
type ManifestSeed struct {
	ID    int        `yaml:"id"`
	Coord [3]float64 `yaml:"coord"`
	Euler [3]float64 `yaml:"euler"`
}

// BuildManifest assembles the manifest for a completed run.
func BuildManifest(runID string, rngSeed int64, phases []pipeline.PhaseRequest, res *pipeline.Result) Manifest {
	m := Manifest{
		RunID:  runID,
		Box:    [3]float64{res.Plan.Box.X, res.Plan.Box.Y, res.Plan.Box.Z},
		Seed:   rngSeed,
		Output: res.OutputPath,
	}
	seedsByPhase := make(map[string][]grain.Seed)
	for _, s := range res.Plan.Seeds {
		seedsByPhase[s.Phase] = append(seedsByPhase[s.Phase], s)
	}
	for _, ph := range phases {
		r, _ := res.Plan.Partition.Range(ph.Spec.Name)
		entry := ManifestPhase{
			Name:      ph.Spec.Name,
			Amorphous: ph.Spec.Amorphous,
			Grains:    ph.Grains,
			IDRange:   r.String(),
		}
		if !ph.Spec.Amorphous {
			entry.Structure = string(ph.Spec.Kind)
		}
		for _, s := range seedsByPhase[ph.Spec.Name] {
			entry.Seeds = append(entry.Seeds, ManifestSeed{
				ID:    s.ID,
				Coord: [3]float64{s.Coord.X, s.Coord.Y, s.Coord.Z},
				Euler: [3]float64{s.Orient.Alpha, s.Orient.Beta, s.Orient.Gamma},
			})
		}
		m.Phases = append(m.Phases, entry)
	}
	return m
}

// WriteManifest persists the manifest next to the exported structure.
func WriteManifest(dir string, m Manifest) (string, error) {
	raw, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding manifest: %w", err)
	}
	name := "polycrystal"
	if m.RunID != "" {
		name += "_" + m.RunID
	}
	path := filepath.Join(dir, name+".manifest.yaml")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
