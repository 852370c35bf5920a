// Package phase resolves phase identifiers into unit-cell geometry requests.
//
// A built-in table covers common crystalline materials; anything not in the
// table falls back to a generic geometry built from the identifier alone.
// The fallback is deliberately recoverable: an unfamiliar material should
// still produce a structure, just with a warning attached.
package phase
