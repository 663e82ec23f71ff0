// Package rop holds Result[T], a value that is either a success carrying a
// value or a failure carrying an error. Callers inspect the outcome with
// IsSuccess instead of receiving a separate error return.
//
// The zero Result is a failure reporting ErrUninitialized, so every Result
// has exactly one of the two shapes.
package rop
