// Package heuristic derives identity signals from filenames and decides how
// much hash verification a size group deserves.
//
// Media filenames encode identity redundantly: daily shows carry an air
// date, serials carry an SxxExx episode code, and everything else has a
// free-text title. Extract picks the most specific signal available so
// incidental differences (resolution tags, release groups, containers) do
// not look like content differences. The Checker compares those signals
// within a group and flags "danger" when they disagree, which forces the
// hash ladder deeper before any merge can be trusted. No file contents are
// read here.
package heuristic
