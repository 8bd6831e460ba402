// Package scaffold runs the init workflow against a project root: it checks
// the plan's version constraint, cleans the listed directories, copies
// template trees and downloads assets, reporting each step as it goes.
package scaffold
