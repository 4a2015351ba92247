package ldtest

import (
	"github.com/launchdarkly/bdd-examples/framework"
)

// Example is a single named check. Creating one has no side effects; the check only runs
// when the group containing it is passed to RunGroups.
type Example struct {
	Label string
	Check func(*T)
}

// ExampleGroup is a named, ordered list of examples. The order is the order in which they
// run and are reported.
type ExampleGroup struct {
	Label    string
	Examples []Example
}

// It creates an example.
func It(label string, check func(*T)) Example {
	return Example{Label: label, Check: check}
}

// PendingIt creates an example that has not been written yet. It always has a pending outcome.
func PendingIt(label, reason string) Example {
	return Example{Label: label, Check: func(t *T) { t.Pending(reason) }}
}

// Describe creates a group from examples, preserving their order.
func Describe(label string, examples ...Example) ExampleGroup {
	return ExampleGroup{
		Label:    label,
		Examples: append([]Example(nil), examples...),
	}
}

// RunGroups runs every example in every group, in order, and returns the outcomes.
//
// The filter is only applied to examples. A group always runs, so that a filter like "-run has"
// can select examples whose group name does not match; any pattern that excludes a group's name
// also excludes all of its examples, since their IDs start with it.
func RunGroups(
	groups []ExampleGroup,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	var exampleFilter framework.Filter
	if filter != nil {
		exampleFilter = func(id framework.TestID) bool {
			return len(id.Path) < 2 || filter(id)
		}
	}
	return framework.Run(exampleFilter, testLogger, func(c *framework.Context) {
		root := newT(c)
		for _, g := range groups {
			group := g
			root.Run(group.Label, func(t *T) {
				for _, e := range group.Examples {
					t.Run(e.Label, e.Check)
				}
			})
		}
	})
}
