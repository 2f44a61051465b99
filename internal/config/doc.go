// Package config provides the command configuration and the YAML input file
// format for scopecalc. It turns input files, presets and defaults into an
// optics.SystemInput.
package config
