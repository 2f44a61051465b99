// Package main provides the entry point for the scopecalc CLI.
//
// scopecalc estimates the optical performance of a microscope camera setup:
// resolution, sampling, field of view and C-mount adapter coverage.
//
// Usage:
//
//	scopecalc compute --camera "Axiocam 105 color" --objective 40 --na 0.65
//	scopecalc compare --objective 20 --na 0.5
//
// See --help for all available options.
package main

// main is the entry point for scopecalc.
func main() {
	Execute()
}
