package atomsk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vk/polygraingo/internal/grain"
	"github.com/vk/polygraingo/internal/phase"
	"github.com/vk/polygraingo/internal/structure"
)

// grainAux is the auxiliary property name Atomsk attaches to polycrystal
// atoms. The codec reads and writes it verbatim.
const grainAux = "grainID"

// WriteCFG writes a structure as extended CFG with scaled coordinates and a
// grainID auxiliary column.
func WriteCFG(path string, s *structure.Structure) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "Number of particles = %d\n", len(s.Atoms))
	fmt.Fprintf(w, "A = 1.0 Angstrom (basic length-scale)\n")
	dims := [3]float64{s.Box.X, s.Box.Y, s.Box.Z}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := 0.0
			if i == j {
				v = dims[i]
			}
			fmt.Fprintf(w, "H0(%d,%d) = %.8f A\n", i+1, j+1, v)
		}
	}
	fmt.Fprintf(w, ".NO_VELOCITY.\n")
	fmt.Fprintf(w, "entry_count = 4\n")
	fmt.Fprintf(w, "auxiliary[0] = %s\n", grainAux)

	// CFG groups atoms into per-species blocks headed by mass and symbol.
	for _, sp := range s.Species() {
		mass, _ := phase.MassOf(sp)
		fmt.Fprintf(w, "%.4f\n%s\n", mass, sp)
		for _, a := range s.Atoms {
			if a.Species != sp {
				continue
			}
			fmt.Fprintf(w, "%.8f %.8f %.8f %d\n",
				a.Pos.X/s.Box.X, a.Pos.Y/s.Box.Y, a.Pos.Z/s.Box.Z, a.GrainID)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return nil
}

// ReadCFG parses an extended CFG file. Only orthorhombic cells are accepted;
// the grainID auxiliary column is optional and defaults to 0 when absent.
func ReadCFG(path string) (*structure.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := parseCFG(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

func parseCFG(r io.Reader) (*structure.Structure, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	var (
		count      = -1
		scale      = 1.0
		h          [3][3]float64
		entryCount = 3
		auxNames   []string
		species    string
		atoms      []structure.Atom
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || line == ".NO_VELOCITY." {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Number of particles"):
			if _, err := fmt.Sscanf(line, "Number of particles = %d", &count); err != nil {
				return nil, fmt.Errorf("bad particle count line %q", line)
			}
			continue
		case strings.HasPrefix(line, "A = "):
			if _, err := fmt.Sscanf(line, "A = %f", &scale); err != nil {
				return nil, fmt.Errorf("bad length-scale line %q", line)
			}
			continue
		case strings.HasPrefix(line, "H0("):
			var i, j int
			var v float64
			if _, err := fmt.Sscanf(line, "H0(%d,%d) = %f", &i, &j, &v); err != nil {
				return nil, fmt.Errorf("bad cell matrix line %q", line)
			}
			if i < 1 || i > 3 || j < 1 || j > 3 {
				return nil, fmt.Errorf("cell matrix index out of range in %q", line)
			}
			h[i-1][j-1] = v
			continue
		case strings.HasPrefix(line, "entry_count"):
			if _, err := fmt.Sscanf(line, "entry_count = %d", &entryCount); err != nil {
				return nil, fmt.Errorf("bad entry_count line %q", line)
			}
			continue
		case strings.HasPrefix(line, "auxiliary["):
			var idx int
			var name string
			if _, err := fmt.Sscanf(line, "auxiliary[%d] = %s", &idx, &name); err != nil {
				return nil, fmt.Errorf("bad auxiliary line %q", line)
			}
			for len(auxNames) <= idx {
				auxNames = append(auxNames, "")
			}
			auxNames[idx] = name
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 1 {
			if _, err := strconv.ParseFloat(fields[0], 64); err == nil {
				// Mass line opening a species block; the symbol follows.
				species = ""
				continue
			}
			species = fields[0]
			continue
		}

		if species == "" {
			return nil, fmt.Errorf("atom line %q before any species block", line)
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("atom line %q has fewer than 3 coordinates", line)
		}
		var sx [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("atom line %q: %w", line, err)
			}
			sx[i] = v
		}
		atom := structure.Atom{Species: species}
		atom.Pos = r3.Vec{
			X: scale * (sx[0]*h[0][0] + sx[1]*h[1][0] + sx[2]*h[2][0]),
			Y: scale * (sx[0]*h[0][1] + sx[1]*h[1][1] + sx[2]*h[2][1]),
			Z: scale * (sx[0]*h[0][2] + sx[1]*h[1][2] + sx[2]*h[2][2]),
		}
		for i, name := range auxNames {
			if name != grainAux {
				continue
			}
			fi := 3 + i
			if fi >= len(fields) {
				return nil, fmt.Errorf("atom line %q missing auxiliary field %d", line, fi)
			}
			id, err := strconv.ParseFloat(fields[fi], 64)
			if err != nil {
				return nil, fmt.Errorf("atom line %q: grain id: %w", line, err)
			}
			atom.GrainID = int(id)
		}
		atoms = append(atoms, atom)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if h[0][1] != 0 || h[0][2] != 0 || h[1][0] != 0 || h[1][2] != 0 || h[2][0] != 0 || h[2][1] != 0 {
		return nil, fmt.Errorf("cell is not orthorhombic; triclinic boxes are unsupported")
	}
	if count >= 0 && count != len(atoms) {
		return nil, fmt.Errorf("header promises %d atoms, file contains %d", count, len(atoms))
	}

	s := &structure.Structure{
		Box:   grain.Box{X: scale * h[0][0], Y: scale * h[1][1], Z: scale * h[2][2]},
		Atoms: atoms,
	}
	return s, nil
}
