// Package hashtier computes SHA-256 content digests over escalating file
// prefixes.
//
// The ladder runs 1MB, 10MB, 100MB, then the full file, trading read cost
// against discriminating power: files that differ usually differ within the
// first megabyte, so the cheap tier settles most groups. Each tier re-reads
// from byte zero, so deeper tiers are only computed when a caller asks for
// them. Unreadable files are reported as errors; callers treat the affected
// comparison as a mismatch rather than aborting a run.
package hashtier
