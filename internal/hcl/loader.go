package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/polygraingo/internal/config"
	"github.com/vk/polygraingo/internal/ctxlog"
	"github.com/vk/polygraingo/internal/fsutil"
)

// Loader parses HCL recipe files into the format-agnostic config model.
type Loader struct{}

// NewLoader creates a recipe loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader. If path is a directory, every .hcl file in
// it (recursively, in sorted order) contributes to one recipe; the box and
// output blocks may appear at most once across all files.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("recipe path: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("scanning recipe directory: %w", err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .hcl recipe files under %s", path)
		}
	}
	logger.Debug("Loading recipe files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()
	haveBox, haveOutput := false, false
	for _, file := range files {
		f, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing %s: %s", file, diags.Error())
		}
		var raw recipeFile
		if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
			return nil, fmt.Errorf("decoding %s: %s", file, diags.Error())
		}

		if raw.Seed != nil {
			model.Seed = *raw.Seed
		}
		if raw.Box != nil {
			if haveBox {
				return nil, fmt.Errorf("%s: recipe defines a second box block", file)
			}
			if len(raw.Box.Size) != 3 {
				return nil, fmt.Errorf("%s: box size needs exactly 3 dimensions, got %d", file, len(raw.Box.Size))
			}
			model.Box = config.BoxConfig{X: raw.Box.Size[0], Y: raw.Box.Size[1], Z: raw.Box.Size[2]}
			haveBox = true
		}
		if raw.Output != nil {
			if haveOutput {
				return nil, fmt.Errorf("%s: recipe defines a second output block", file)
			}
			model.Output = config.OutputConfig{
				Format:  raw.Output.Format,
				Postfix: raw.Output.Postfix,
				Dir:     raw.Output.Dir,
			}
			haveOutput = true
		}
		for _, ph := range raw.Phases {
			model.Phases = append(model.Phases, translatePhase(ph))
		}
	}

	if !haveBox {
		return nil, fmt.Errorf("recipe defines no box block")
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Recipe loaded.", "phases", len(model.Phases))
	return model, nil
}

func translatePhase(ph *phaseBlock) *config.PhaseConfig {
	return &config.PhaseConfig{
		Name:             ph.Name,
		Grains:           ph.Grains,
		Structure:        ph.Structure,
		LatticeConstants: ph.LatticeConstants,
		Species:          ph.Species,
		Amorphous:        ph.Amorphous,
		Stoichiometry:    ph.Stoichiometry,
		Density:          ph.Density,
		CellSize:         ph.CellSize,
	}
}
