package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/polygraingo/internal/config"
	"github.com/vk/polygraingo/internal/ctxlog"
	"github.com/vk/polygraingo/internal/phase"
	"github.com/vk/polygraingo/internal/pipeline"
)

// resolvePhases turns recipe phase blocks into pipeline requests. Recipe
// geometry overrides beat the registry; unknown identifiers without an
// override fall back to the generic default geometry with a warning.
func resolvePhases(ctx context.Context, phases []*config.PhaseConfig) ([]pipeline.PhaseRequest, error) {
	logger := ctxlog.FromContext(ctx)

	out := make([]pipeline.PhaseRequest, 0, len(phases))
	for _, ph := range phases {
		spec, err := resolveOne(ph)
		if err != nil {
			var unknown *phase.UnknownGeometryError
			if !errors.As(err, &unknown) {
				return nil, fmt.Errorf("phase %q: %w", ph.Name, err)
			}
			logger.Warn("Phase has no registered geometry, using generic default.", "phase", unknown.Phase)
		}
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		out = append(out, pipeline.PhaseRequest{Spec: spec, Grains: ph.Grains})
	}
	return out, nil
}

func resolveOne(ph *config.PhaseConfig) (phase.Spec, error) {
	if ph.Amorphous {
		return phase.Spec{
			Name:          ph.Name,
			Amorphous:     true,
			Stoichiometry: ph.Stoichiometry,
			Density:       ph.Density,
			CellSize:      ph.CellSize,
		}, nil
	}

	if ph.Structure != "" {
		kind, err := phase.ParseKind(ph.Structure)
		if err != nil {
			return phase.Spec{}, err
		}
		species := ph.Species
		if len(species) == 0 {
			species = []string{ph.Name}
		}
		return phase.Spec{
			Name:      ph.Name,
			Kind:      kind,
			Constants: ph.LatticeConstants,
			Species:   species,
		}, nil
	}

	return phase.Resolve(ph.Name)
}
