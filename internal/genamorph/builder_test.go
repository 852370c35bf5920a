package genamorph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/polygraingo/internal/phase"
)

func TestArgs(t *testing.T) {
	spec := phase.Spec{
		Name:          "a-SiO2",
		Amorphous:     true,
		Stoichiometry: map[string]int{"Si": 1, "O": 2},
		Density:       2.2,
	}

	args := Args(spec, 15, "/scratch/amorphous_a-SiO2.cfg")

	assert.Equal(t, []string{
		"-s", "O:2", "Si:1",
		"-c", "15", "15", "15",
		"--density", "2.2",
		"-of", "/scratch/amorphous_a-SiO2.cfg",
		"-frmt", "cfg",
	}, args)
}

func TestArgs_SpeciesOrderIsDeterministic(t *testing.T) {
	spec := phase.Spec{
		Name:          "glass",
		Amorphous:     true,
		Stoichiometry: map[string]int{"Zr": 1, "Al": 2, "Cu": 3},
		Density:       6.5,
	}

	first := Args(spec, 12, "out.cfg")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Args(spec, 12, "out.cfg"))
	}
	assert.Equal(t, []string{"-s", "Al:2", "Cu:3", "Zr:1"}, first[:4])
}
