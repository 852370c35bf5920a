package config

import "fmt"

// Model is the unified representation of one polycrystal recipe: the box,
// the phases with their grain counts, and the output settings.
type Model struct {
	Box    BoxConfig
	Phases []*PhaseConfig
	Output OutputConfig
	// Seed drives seeding and grain orientation. Zero means derive a seed
	// from the clock at run time.
	Seed int64
}

// BoxConfig is the simulation box requested by the recipe.
type BoxConfig struct {
	X, Y, Z float64
}

// PhaseConfig is one `phase` block: a phase identifier, its grain count, and
// optional geometry overrides. Geometry fields left empty defer to the phase
// registry's built-in table.
type PhaseConfig struct {
	Name   string
	Grains int

	// Crystalline overrides.
	Structure        string
	LatticeConstants []float64
	Species          []string

	// Amorphous path.
	Amorphous     bool
	Stoichiometry map[string]int
	Density       float64
	CellSize      float64
}

// OutputConfig selects the export format and names the run's artifacts.
type OutputConfig struct {
	Format  string
	Postfix string
	Dir     string
}

// Validate checks the structural integrity of a loaded recipe. Semantic
// validation (grain counts, box dimensions) is the pipeline's job; this only
// rejects recipes that cannot express a run at all.
func (m *Model) Validate() error {
	if len(m.Phases) == 0 {
		return fmt.Errorf("recipe defines no phases")
	}
	seen := make(map[string]bool, len(m.Phases))
	for _, ph := range m.Phases {
		if ph.Name == "" {
			return fmt.Errorf("recipe has a phase block without a name")
		}
		if seen[ph.Name] {
			return fmt.Errorf("recipe defines phase %q more than once", ph.Name)
		}
		seen[ph.Name] = true
	}
	return nil
}
