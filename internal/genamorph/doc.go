// Package genamorph adapts the external amorphous seed-cell generator. The
// tool places atoms iteratively against a covalent-radius acceptance
// criterion until a target density is met, so builds can be slow and expose
// no progress; the adapter treats each invocation as a single synchronous
// success or failure.
package genamorph
