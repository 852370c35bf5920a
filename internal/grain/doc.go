// Package grain owns the geometric bookkeeping of a polycrystal run: the
// simulation box, the random grain seeds, and the global grain-id partition.
//
// Grain ids are allocated phase-major from a single monotone Sequence, so the
// partition is a disjoint cover of 1..N by construction. The final state of
// the Sequence is the authoritative record of what was allocated; nothing
// downstream re-derives ids by scanning structures.
package grain
