// Package examplesuite contains the example suite itself: groups of examples showing how to
// write checks against sample.MyClass, how fixtures are scoped to a single example, and what
// each matcher in the matchers package does.
//
// The suite is run by the command in the module root, or by the Go tests in this package.
package examplesuite
