// Package main hosts the forestsim CLI entrypoint and command graph.
//
// Invoked with forest names, the root command seeds each forest from its CSV
// file and hands control to the interactive shell. Subcommands cover
// non-interactive inspection of a single forest, listing saved forests, and
// configuration scaffolding. Configuration resolution and logger setup are
// centralized in commandContext so commands stay declarative.
package main
