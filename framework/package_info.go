// Package framework contains the low-level implementation of the example runner, which
// can be reused for any suite of behavior-driven examples.
//
// The general model is:
//
// 1. A Context is similar to Go's *testing.T. Each example, and each group of examples, gets
// its own Context, which accumulates success/failure/pending state for that example only.
//
// 2. Examples run synchronously in the order they are reached. One example failing, or
// panicking, never stops its siblings from running.
//
// 3. Each Context can have cleanup functions attached with Defer. These are guaranteed to be
// called exactly once when the example finishes, however it finishes.
//
// 4. Progress is reported to a TestLogger as the run proceeds, and the full set of outcomes
// is returned as Results at the end.
//
// The registration DSL that suites are written in is in the ldtest subpackage.
package framework
