// Package ldtest is the API that example suites are written in.
//
// A suite is a list of ExampleGroups, each built with Describe from examples built with It,
// ItWith, or PendingIt. Building the list only records labels and functions; RunGroups then
// runs everything in order using the framework package.
//
// Fixtures are plain values created by a factory function once per example. Because nothing is
// shared between examples, one example changing its fixture can never affect another.
package ldtest
