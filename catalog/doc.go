// Package catalog loads additional 8 bit set subtypes from definition files
// and registers them with package dptx.
//
// A definition file lists subtypes with their id and flag names, bit 0
// first:
//
//	subtypes:
//	  - id: "21.900"
//	    name: PumpStatus
//	    flags: [Running, Fault, Manual]
//
// The format is chosen by file extension (.json, .yaml, .yml, .toml).
// When a description is omitted it is derived from the CamelCase name.
package catalog
