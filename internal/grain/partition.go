package grain

import "fmt"

// IDRange is a contiguous, inclusive range of grain ids.
type IDRange struct {
	Lo, Hi int
}

// Contains reports whether id falls inside the range.
func (r IDRange) Contains(id int) bool {
	return id >= r.Lo && id <= r.Hi
}

// Count returns the number of ids in the range.
func (r IDRange) Count() int {
	return r.Hi - r.Lo + 1
}

func (r IDRange) String() string {
	return fmt.Sprintf("[%d..%d]", r.Lo, r.Hi)
}

// PhaseRange pairs a phase identifier with the id range it owns.
type PhaseRange struct {
	Phase string
	IDRange
}

// Partition maps each phase to the contiguous grain-id range it owns. Phase
// order is the first-seen order of the seeding requests, which keeps id
// assignment reproducible for identical input.
type Partition struct {
	order  []string
	ranges map[string]IDRange
}

// NewPartition returns an empty partition.
func NewPartition() *Partition {
	return &Partition{ranges: make(map[string]IDRange)}
}

// assign records a phase's id range. It is called once per phase during
// seeding; a second assignment for the same phase is a programmer error.
func (p *Partition) assign(phase string, r IDRange) {
	if _, exists := p.ranges[phase]; exists {
		panic(fmt.Sprintf("partition: phase %q assigned twice", phase))
	}
	p.order = append(p.order, phase)
	p.ranges[phase] = r
}

// Phases returns the phase identifiers in first-seen order.
func (p *Partition) Phases() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Range returns the id range owned by phase and whether the phase is known.
func (p *Partition) Range(phase string) (IDRange, bool) {
	r, ok := p.ranges[phase]
	return r, ok
}

// Others returns the ranges owned by every phase except the given one, in
// first-seen order. Callers excluding foreign grains iterate this slice so
// that exclusion passes apply in a defined, repeatable order.
func (p *Partition) Others(phase string) []PhaseRange {
	var out []PhaseRange
	for _, name := range p.order {
		if name == phase {
			continue
		}
		out = append(out, PhaseRange{Phase: name, IDRange: p.ranges[name]})
	}
	return out
}

// Domain returns the full id range 1..N covered by the partition. An empty
// partition has a domain of [1..0], which contains nothing.
func (p *Partition) Domain() IDRange {
	hi := 0
	for _, r := range p.ranges {
		if r.Hi > hi {
			hi = r.Hi
		}
	}
	return IDRange{Lo: 1, Hi: hi}
}

// Size returns the total number of allocated ids.
func (p *Partition) Size() int {
	n := 0
	for _, r := range p.ranges {
		n += r.Count()
	}
	return n
}

// Owner returns the phase owning the given id, or "" if no phase owns it.
func (p *Partition) Owner(id int) string {
	for _, name := range p.order {
		if p.ranges[name].Contains(id) {
			return name
		}
	}
	return ""
}
