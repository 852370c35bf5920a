package hcl

// recipeFile mirrors the HCL surface of a single recipe file. A recipe may
// be split across files in one directory, so every block is optional here;
// presence requirements are enforced after merging.
type recipeFile struct {
	Seed   *int64        `hcl:"seed,optional"`
	Box    *boxBlock     `hcl:"box,block"`
	Phases []*phaseBlock `hcl:"phase,block"`
	Output *outputBlock  `hcl:"output,block"`
}

type boxBlock struct {
	Size []float64 `hcl:"size"`
}

type phaseBlock struct {
	Name   string `hcl:"name,label"`
	Grains int    `hcl:"grains"`

	Structure        string    `hcl:"structure,optional"`
	LatticeConstants []float64 `hcl:"lattice_constants,optional"`
	Species          []string  `hcl:"species,optional"`

	Amorphous     bool           `hcl:"amorphous,optional"`
	Stoichiometry map[string]int `hcl:"stoichiometry,optional"`
	Density       float64        `hcl:"density,optional"`
	CellSize      float64        `hcl:"cell_size,optional"`
}

type outputBlock struct {
	Format  string `hcl:"format,optional"`
	Postfix string `hcl:"postfix,optional"`
	Dir     string `hcl:"dir,optional"`
}
