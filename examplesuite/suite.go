package examplesuite

import (
	"github.com/launchdarkly/bdd-examples/framework"
	"github.com/launchdarkly/bdd-examples/framework/ldtest"
)

// Suite is the example suite, along with the resources that outlive individual examples.
// Call Close when finished with it.
type Suite struct {
	store *recordStore
}

func NewSuite() *Suite {
	return &Suite{store: newRecordStore()}
}

// Groups returns every example group in the order they run.
func (s *Suite) Groups() []ldtest.ExampleGroup {
	return []ldtest.ExampleGroup{
		myClassExamples(),
		equalityExamples(),
		stringExamples(),
		numberExamples(),
		optionalValueExamples(),
		collectionExamples(),
		mapExamples(),
		errorExamples(),
		contextExamples(),
		s.cleanupContextExamples(),
		pendingExamples(),
	}
}

func (s *Suite) Run(filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	return ldtest.RunGroups(s.Groups(), filter, testLogger)
}

func (s *Suite) Close() {
	s.store.close()
}
