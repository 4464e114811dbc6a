// Package forest models named collections of trees and the simulation rules
// applied to them.
//
// A Forest owns an ordered slice of Trees; order matters because cutting and
// reaping address trees by position. Growth is multiplicative per tree,
// reaping swaps over-threshold trees for freshly planted ones in place, and
// seed data is ingested from comma-separated text where bad lines are
// reported and skipped rather than aborting the load.
//
// Randomness is injected through a Generator so callers decide the source;
// nothing in this package reads global state or writes to stdout.
package forest
