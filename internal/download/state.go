package download

import "fmt"

// State is a step in the download lifecycle.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateInProgress
	StateSkipped
	StateCompleted
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:       "idle",
	StateStarting:   "starting",
	StateInProgress: "in-progress",
	StateSkipped:    "skipped",
	StateCompleted:  "completed",
	StateFailed:     "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no further transition can follow s.
func (s State) Terminal() bool {
	return s == StateSkipped || s == StateCompleted || s == StateFailed
}

// EventKind identifies a lifecycle event.
type EventKind int

const (
	EventStart EventKind = iota
	EventProgress
	EventSkip
	EventEnd
	EventError
)

var eventNames = map[EventKind]string{
	EventStart:    "start",
	EventProgress: "progress",
	EventSkip:     "skip",
	EventEnd:      "end",
	EventError:    "error",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is published on every lifecycle transition.
type Event struct {
	Kind    EventKind
	Percent int    // EventProgress only, 0-100
	Path    string // EventSkip and EventEnd
	Err     error  // EventError only
}

// state returns the lifecycle state an event moves the download into.
func (e Event) state() State {
	switch e.Kind {
	case EventStart:
		return StateStarting
	case EventProgress:
		return StateInProgress
	case EventSkip:
		return StateSkipped
	case EventEnd:
		return StateCompleted
	default:
		return StateFailed
	}
}

// Result is the terminal outcome of a download.
type Result struct {
	State State
	// Path is the destination file for Skipped and Completed results.
	Path string
	// Err is the transport or file-system failure for Failed results.
	Err error
}

// Skipped reports whether the destination already existed.
func (r Result) Skipped() bool { return r.State == StateSkipped }

// Completed reports whether the asset was written to Path.
func (r Result) Completed() bool { return r.State == StateCompleted }

// Failed reports whether the download ended with Err.
func (r Result) Failed() bool { return r.State == StateFailed }
