// Package mass lifts solo primitives onto channels so they can serve as
// engines for core.Locomotive, and finalizes a stream of results.
package mass
