// Package download fetches a single remote asset to disk while reporting its
// lifecycle. A download moves through Starting and InProgress to exactly one
// of Skipped, Completed or Failed; every transition is published as an Event
// to the progress indicator, the status logger and an optional observer, and
// the terminal state is delivered once on the channel returned by Start.
package download
