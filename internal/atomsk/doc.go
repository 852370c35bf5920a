// Package atomsk adapts the external Atomsk toolchain: unit-cell creation
// and Voronoi polycrystal tessellation. Every call shells out to the atomsk
// binary synchronously and parses the resulting structure back into memory;
// a non-zero exit is surfaced with the tool's stderr attached and aborts the
// calling phase.
//
// The package also carries the extended-CFG codec used at the tool boundary,
// including the grainID auxiliary property that attributes each atom to its
// grain region.
package atomsk
