// Package watch re-runs a callback when an input file changes.
//
// The parent directory is watched rather than the file itself, because most
// editors save by writing a temporary file and renaming it over the
// original, which would end a watch placed on the old inode.
package watch
