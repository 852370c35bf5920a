// Package pipeline orchestrates a polycrystal run end to end: seed the
// grains, tessellate the box once per phase, strip foreign grains from each
// phase's polycrystal, then merge, verify, label, and export.
//
// Per-phase branches are independent and run concurrently; the merge is the
// synchronization barrier. External collaborators (unit-cell builder,
// tessellation engine, amorphous seed builder, exporter) are reached through
// the port interfaces in ports.go, so the orchestration logic is testable
// against in-memory fakes.
package pipeline
