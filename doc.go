// Package availability computes group availability overlap for a fixed calendar month.
//
// Callers supply the full list of ranges on every call; nothing is cached and
// all operations are safe for concurrent use.
package availability
