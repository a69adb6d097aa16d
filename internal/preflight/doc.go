// Package preflight gates a run before any hashing or destructive work.
//
// It verifies every root directory is accessible, acquires the single-run
// lock so two relink processes cannot race the same trees, and carries the
// operator confirmation that no other program is writing to the targets.
// Refusing that confirmation aborts the run before any work happens.
package preflight
