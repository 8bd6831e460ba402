// Package console owns everything the CLI writes for humans: the status
// logger, colour styles, ok/fail symbols and sanitising of untrusted text
// before it reaches the terminal.
package console
