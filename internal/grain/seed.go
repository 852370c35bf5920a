package grain

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sequence hands out grain ids monotonically starting at 1. It is passed into
// seeding explicitly; its final state is the authoritative count of allocated
// ids.
type Sequence struct {
	next int
}

// NewSequence returns a Sequence whose first id is 1.
func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Next returns the next unallocated id and advances the sequence.
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}

// Last returns the highest id allocated so far, or 0 if none.
func (s *Sequence) Last() int {
	return s.next - 1
}

// Orientation is a crystallographic grain orientation expressed as ZXZ Euler
// angles in degrees.
type Orientation struct {
	Alpha, Beta, Gamma float64
}

// Seed is one grain nucleus: a coordinate inside the box, the owning phase,
// a globally unique id, and a random orientation. Seeds are immutable after
// generation.
type Seed struct {
	ID     int
	Phase  string
	Coord  r3.Vec
	Orient Orientation
}

// Request asks for a number of grains on behalf of one phase.
type Request struct {
	Phase string
	Count int
}

// Plan is the output of seeding: every seed across all phases plus the
// phase-to-id-range partition they induce.
type Plan struct {
	Box       Box
	Seeds     []Seed
	Partition *Partition
}

// Generate seeds every requested grain. For each request, in order, it draws
// Count coordinates uniformly from (0, dim] per axis and an independent
// orientation per grain, allocating ids from seq. Seeds of different grains
// may land arbitrarily close together; separating them is the tessellation
// engine's concern.
func Generate(box Box, reqs []Request, rng *rand.Rand, seq *Sequence) (*Plan, error) {
	if err := box.Validate(); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(reqs))
	for _, req := range reqs {
		if req.Count < 1 {
			return nil, &InvalidGrainCountError{Phase: req.Phase, Count: req.Count}
		}
		if seen[req.Phase] {
			return nil, &DuplicatePhaseError{Phase: req.Phase}
		}
		seen[req.Phase] = true
	}

	plan := &Plan{Box: box, Partition: NewPartition()}
	for _, req := range reqs {
		lo := seq.Next()
		id := lo
		for i := 0; i < req.Count; i++ {
			if i > 0 {
				id = seq.Next()
			}
			plan.Seeds = append(plan.Seeds, Seed{
				ID:     id,
				Phase:  req.Phase,
				Coord:  randomCoord(box, rng),
				Orient: randomOrientation(rng),
			})
		}
		plan.Partition.assign(req.Phase, IDRange{Lo: lo, Hi: id})
	}
	return plan, nil
}

// randomCoord draws uniformly from the half-open interval (0, dim] on each
// axis. 1-Float64() maps [0,1) onto (0,1], which keeps the lower bound
// exclusive as the box contract requires.
func randomCoord(box Box, rng *rand.Rand) r3.Vec {
	return r3.Vec{
		X: (1 - rng.Float64()) * box.X,
		Y: (1 - rng.Float64()) * box.Y,
		Z: (1 - rng.Float64()) * box.Z,
	}
}

func randomOrientation(rng *rand.Rand) Orientation {
	return Orientation{
		Alpha: rng.Float64() * 360,
		Beta:  rng.Float64() * 180,
		Gamma: rng.Float64() * 360,
	}
}
