// Package config defines the format-agnostic recipe model for a polycrystal
// run, along with the Loader interface for reading it from disk.
//
// The config.Model is the single source of truth the app hands to the
// pipeline. The concrete HCL implementation lives in the hcl package.
package config
