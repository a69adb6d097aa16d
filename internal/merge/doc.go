// Package merge collapses confirmed duplicate groups onto a single inode.
//
// The first member of a group survives; every other member is unlinked and
// replaced with a hardlink to the survivor. The unlink-then-link ordering
// makes failure to link the single most critical error path, since the
// original is already gone, so an executor stops and reports loudly instead
// of continuing. Merging never crosses filesystems.
package merge
