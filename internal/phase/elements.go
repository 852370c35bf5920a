package phase

// atomicMasses holds standard atomic weights in amu for the elements the
// built-in registry and common recipes touch.
var atomicMasses = map[string]float64{
	"H": 1.008, "He": 4.003,
	"Li": 6.941, "Be": 9.012, "B": 10.811, "C": 12.011, "N": 14.007,
	"O": 15.999, "F": 18.998, "Ne": 20.180,
	"Na": 22.990, "Mg": 24.305, "Al": 26.982, "Si": 28.086, "P": 30.974,
	"S": 32.065, "Cl": 35.453, "Ar": 39.948,
	"K": 39.098, "Ca": 40.078, "Ti": 47.867, "Cr": 51.996, "Mn": 54.938,
	"Fe": 55.845, "Ni": 58.693, "Cu": 63.546, "Zn": 65.38, "Ga": 69.723,
	"Ge": 72.64, "As": 74.922, "Se": 78.96, "Br": 79.904,
	"Zr": 91.224, "Nb": 92.906, "Mo": 95.96, "Ag": 107.868, "Cd": 112.411,
	"In": 114.818, "Sn": 118.710, "Sb": 121.760, "Te": 127.60, "I": 126.904,
	"Cs": 132.905, "Ba": 137.327, "Ce": 140.116, "Ta": 180.948, "W": 183.84,
	"Pt": 195.084, "Au": 196.967, "Pb": 207.2,
}

// MassOf returns the atomic mass of a species symbol in amu. Unknown symbols
// (including generic fallback species that are not real elements) get 1.0 so
// a structure can still be written; the exporter logs when that happens.
func MassOf(species string) (float64, bool) {
	m, ok := atomicMasses[species]
	if !ok {
		return 1.0, false
	}
	return m, true
}
