// Package cli defines the Cobra command tree for create-nightwatch. The root
// command runs the init workflow; the remaining files each register one
// subcommand. Business logic lives in the internal packages; this package
// only parses flags, talks to the user and formats output.
package cli
