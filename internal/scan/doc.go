// Package scan walks directory trees and collects candidate files for
// duplicate analysis.
//
// The walk skips hidden entries (names beginning with a dot, pruning whole
// hidden directories), keeps only regular files, and applies the configured
// minimum size. Inode and device numbers come from platform-specific stat
// data so already-hardlinked files can be recognized downstream.
package scan
