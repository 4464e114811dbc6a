// Package shell runs the interactive forest menu.
//
// A Session holds the forests named on the command line, keyed by name, and a
// cursor on the current one. Menu commands read from an io.Reader and write
// plain text to an io.Writer so the loop can be driven by scripted input in
// tests. Diagnostics go to the session logger, never to the output writer.
package shell
