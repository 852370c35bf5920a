// Package structure models atomic configurations as they move through the
// pipeline: the full-box per-phase polycrystals returned by the tessellation
// engine, the isolated per-phase structures after foreign grains are removed,
// and the merged, labeled structure handed to export.
//
// Every atom carries the grain id inherited from tessellation. The package
// provides the grain-id-range removal primitive that isolation is composed
// from, the merge with its id-coverage verification, and the final grain-id
// to molecule-id remapping.
package structure
