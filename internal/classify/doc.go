// Package classify turns heuristic and hash evidence into a per-group
// duplicate confidence.
//
// Every group pays for the cheap 1MB prefix tier; a mismatch there is
// conclusive and overrides any filename agreement. Groups whose heuristics
// also agree are very likely duplicates without further reads. Groups with
// disagreeing heuristics, or more than two members, land in the uncertain
// middle and are resolved by the configured escalation mode: left alone,
// escalated automatically to the 10MB tier, or handed to an interactive
// resolver choosing how deep to hash. A mismatch at any escalated tier is a
// conclusive non-duplicate.
package classify
