// Package treecopy copies template trees into a project and removes trees
// from it. Copy prunes directories whose path ends with one of the caller's
// exclusion suffixes and leaves existing files alone unless asked to
// overwrite them. Both operations work on an afero.Fs so callers can swap
// the real disk for an in-memory file system.
package treecopy
