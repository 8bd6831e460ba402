// Package platform wraps the file-system calls whose behaviour differs
// between operating systems.
package platform
