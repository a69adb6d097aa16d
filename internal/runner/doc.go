// Package runner wires the pipeline together: preflight, walk, size
// grouping, classification, and the optional merge pass.
//
// Every group is fully classified, including any interactive resolution,
// before the first merge runs. The run is single-threaded; each hashing
// call blocks for its IO duration, which keeps a hung filesystem read
// visible to the operator instead of hidden behind a scheduler.
package runner
