// Package sizegroup partitions candidate files into groups sharing an exact
// byte length, the unit of duplicate analysis.
//
// Groups with fewer than two members cannot contain duplicates and are
// dropped, as are groups whose members already share one inode. Member order
// within a group preserves discovery order; the order of groups themselves
// carries no meaning.
package sizegroup
