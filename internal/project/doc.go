// Package project makes sure the target root is a Node.js project before
// templates are copied into it, initialising package.json with npm when it
// is missing.
package project
