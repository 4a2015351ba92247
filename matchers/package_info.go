// Package matchers contains the predicates used to check values in examples.
//
// Each function returns a Matcher built on one of gomega's matchers, which can be tested
// against an actual value to get a pass/fail Result with a readable message. In an example,
// the usual way to use one is with AssertThat or RequireThat:
//
//	matchers.AssertThat(t, address, matchers.ContainsSubstring("Tel Aviv"))
//	matchers.RequireThat(t, months, matchers.Not(matchers.HasKey(12)))
//
// Since a Matcher is also a gomega matcher, it works with gomega.NewWithT as well.
//
// Equality is loose by default: numbers of different types compare equal if they have the
// same value. A value of the wrong kind for a matcher, such as a slice passed to HasKey, is
// reported as an error rather than a mismatch, so negating the matcher does not hide it.
package matchers
