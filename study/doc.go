// Package study loads experimental plans from YAML files into the typed
// inputs the engine packages consume: factors, a design specification,
// observed response vectors keyed by standard run order, and
// desirability profiles.
//
// The engine itself never touches the filesystem; this package is the
// one adapter that does, so file handling stays in one place.
package study
