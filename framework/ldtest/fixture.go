package ldtest

// AfterHook is implemented by fixtures that hold something that must be released when the
// example is done with them, such as a server or a record written to a store.
type AfterHook interface {
	After() error
}

// WithFixture wraps a check that depends on a fixture. Every time the returned function runs,
// newFixture is called to build a fresh value, so examples never see each other's changes.
//
// If the fixture implements AfterHook, After is called exactly once when the example finishes,
// whether it passed, failed, or panicked. An error from After is written to the debug log; it
// does not change the example's outcome.
func WithFixture[F any](newFixture func() F, check func(*T, F)) func(*T) {
	return func(t *T) {
		fixture := newFixture()
		if hook, ok := any(fixture).(AfterHook); ok {
			t.Defer(func() {
				if err := hook.After(); err != nil {
					t.Debug("fixture cleanup failed: %s", err)
				}
			})
		}
		check(t, fixture)
	}
}

// ItWith is shorthand for It(label, WithFixture(newFixture, check)).
func ItWith[F any](label string, newFixture func() F, check func(*T, F)) Example {
	return It(label, WithFixture(newFixture, check))
}
