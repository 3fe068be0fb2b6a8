// Package main provides the CLI entry point for seccannon.
//
// seccannon generates a spreadsheet of every positive integer solution
// (fusion, xyz) of the Simultaneous Equation Cannon system within the
// given level and rank ranges.
//
// Usage:
//
//	seccannon <xyz_min> <xyz_max> <fusion_min> <fusion_max>
//
// See --help for all available options.
package main

import "os"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
