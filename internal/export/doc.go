// Package export persists labeled structures in simulation-ready formats
// and writes the YAML run manifest that records how a structure was built.
//
// Exported files carry the per-atom molecule id that the pipeline remapped
// from grain ids; the writers refuse structures that were never remapped.
package export
