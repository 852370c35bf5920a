// Package hcl implements the config.Loader interface for HCL recipe files.
//
// A recipe looks like:
//
//	seed = 42
//
//	box {
//	  size = [200, 200, 200]
//	}
//
//	phase "AlN" {
//	  grains = 6
//	}
//
//	phase "glass" {
//	  grains        = 4
//	  amorphous     = true
//	  stoichiometry = { Si = 1, O = 2 }
//	  density       = 2.2
//	}
//
//	output {
//	  format  = "lammps"
//	  postfix = "run1"
//	}
package hcl
