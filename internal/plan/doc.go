// Package plan loads and validates scaffold plans: YAML files listing which
// directories to clean, which template trees to copy and which assets to
// download into a project. Plans are validated against an embedded JSON
// schema before use.
package plan
