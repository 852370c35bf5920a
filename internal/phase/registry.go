package phase

import "fmt"

// Kind names a unit-cell lattice geometry understood by the unit-cell builder.
type Kind string

const (
	Rocksalt       Kind = "rocksalt"
	Zincblende     Kind = "zincblende"
	Wurtzite       Kind = "wurtzite"
	Fluorite       Kind = "fluorite"
	CesiumChloride Kind = "cesium-chloride"
	Diamond        Kind = "diamond"
	FCC            Kind = "fcc"
	BCC            Kind = "bcc"
	Generic        Kind = "generic"
)

// kinds lists every recognised lattice kind.
var kinds = map[Kind]bool{
	Rocksalt:       true,
	Zincblende:     true,
	Wurtzite:       true,
	Fluorite:       true,
	CesiumChloride: true,
	Diamond:        true,
	FCC:            true,
	BCC:            true,
	Generic:        true,
}

// ParseKind validates a lattice kind name from a recipe.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !kinds[k] {
		return "", fmt.Errorf("unknown lattice structure %q", s)
	}
	return k, nil
}

// hexagonal reports whether the kind needs both a and c lattice constants.
func (k Kind) hexagonal() bool {
	return k == Wurtzite
}

// Spec is a resolved phase: everything the unit-cell builder (or, for
// amorphous phases, the seed-cell builder) needs. Immutable once resolved.
type Spec struct {
	Name      string
	Kind      Kind
	Constants []float64 // a, or a and c for hexagonal kinds, in Angstrom
	Species   []string

	// Amorphous phases bypass the lattice fields and are built from a
	// stoichiometry and a target density instead.
	Amorphous     bool
	Stoichiometry map[string]int
	Density       float64 // g/cm^3
	CellSize      float64 // seed-cell edge length in Angstrom
}

// Validate checks internal consistency of a resolved spec.
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("phase spec has no name")
	}
	if s.Amorphous {
		if len(s.Stoichiometry) == 0 {
			return fmt.Errorf("amorphous phase %q needs a stoichiometry", s.Name)
		}
		if s.Density <= 0 {
			return fmt.Errorf("amorphous phase %q needs a positive density, got %g", s.Name, s.Density)
		}
		return nil
	}
	if !kinds[s.Kind] {
		return fmt.Errorf("phase %q has unknown lattice kind %q", s.Name, s.Kind)
	}
	want := 1
	if s.Kind.hexagonal() {
		want = 2
	}
	if len(s.Constants) != want {
		return fmt.Errorf("phase %q (%s) needs %d lattice constant(s), got %d", s.Name, s.Kind, want, len(s.Constants))
	}
	for _, a := range s.Constants {
		if a <= 0 {
			return fmt.Errorf("phase %q has non-positive lattice constant %g", s.Name, a)
		}
	}
	if len(s.Species) == 0 {
		return fmt.Errorf("phase %q has no species", s.Name)
	}
	return nil
}

// UnknownGeometryError signals that a phase identifier was not in the
// registry and a generic default geometry was substituted. Callers treat it
// as recoverable: log it and use the returned fallback spec.
type UnknownGeometryError struct {
	Phase string
}

func (e *UnknownGeometryError) Error() string {
	return fmt.Sprintf("no registered geometry for phase %q, using generic default", e.Phase)
}

// defaultConstant is the lattice constant handed to generic fallback
// geometry requests.
const defaultConstant = 4.0

// builtin maps known phase identifiers to their unit-cell geometry.
// Lattice constants are room-temperature experimental values in Angstrom.
var builtin = map[string]Spec{
	"MgO":  {Kind: Rocksalt, Constants: []float64{4.212}, Species: []string{"Mg", "O"}},
	"NaCl": {Kind: Rocksalt, Constants: []float64{5.640}, Species: []string{"Na", "Cl"}},
	"TiN":  {Kind: Rocksalt, Constants: []float64{4.241}, Species: []string{"Ti", "N"}},
	"ZnS":  {Kind: Zincblende, Constants: []float64{5.410}, Species: []string{"Zn", "S"}},
	"SiC":  {Kind: Zincblende, Constants: []float64{4.360}, Species: []string{"Si", "C"}},
	"GaAs": {Kind: Zincblende, Constants: []float64{5.653}, Species: []string{"Ga", "As"}},
	"AlN":  {Kind: Wurtzite, Constants: []float64{3.110, 4.980}, Species: []string{"Al", "N"}},
	"GaN":  {Kind: Wurtzite, Constants: []float64{3.189, 5.185}, Species: []string{"Ga", "N"}},
	"ZnO":  {Kind: Wurtzite, Constants: []float64{3.250, 5.207}, Species: []string{"Zn", "O"}},
	"CaF2": {Kind: Fluorite, Constants: []float64{5.463}, Species: []string{"Ca", "F"}},
	"CeO2": {Kind: Fluorite, Constants: []float64{5.411}, Species: []string{"Ce", "O"}},
	"CsCl": {Kind: CesiumChloride, Constants: []float64{4.123}, Species: []string{"Cs", "Cl"}},
	"Si":   {Kind: Diamond, Constants: []float64{5.431}, Species: []string{"Si"}},
	"Ge":   {Kind: Diamond, Constants: []float64{5.658}, Species: []string{"Ge"}},
	"Cu":   {Kind: FCC, Constants: []float64{3.615}, Species: []string{"Cu"}},
	"Al":   {Kind: FCC, Constants: []float64{4.046}, Species: []string{"Al"}},
	"Ni":   {Kind: FCC, Constants: []float64{3.524}, Species: []string{"Ni"}},
	"Fe":   {Kind: BCC, Constants: []float64{2.866}, Species: []string{"Fe"}},
	"W":    {Kind: BCC, Constants: []float64{3.165}, Species: []string{"W"}},
}

// Resolve looks up a phase identifier in the registry. Unknown identifiers
// return a usable generic fallback spec together with an UnknownGeometryError
// that the caller is expected to log, not fail on.
func Resolve(name string) (Spec, error) {
	if spec, ok := builtin[name]; ok {
		spec.Name = name
		return spec, nil
	}
	return Fallback(name), &UnknownGeometryError{Phase: name}
}

// Fallback builds the generic default-geometry request for an unregistered
// phase, using only the identifier itself.
func Fallback(name string) Spec {
	return Spec{
		Name:      name,
		Kind:      Generic,
		Constants: []float64{defaultConstant},
		Species:   []string{name},
	}
}
