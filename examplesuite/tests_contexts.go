package examplesuite

import (
	"github.com/launchdarkly/bdd-examples/framework/ldtest"
	m "github.com/launchdarkly/bdd-examples/matchers"

	"github.com/stretchr/testify/require"
)

func contextExamples() ldtest.ExampleGroup {
	return ldtest.Describe("contexts",
		ldtest.ItWith("can change its own context", newValueContext, func(t *ldtest.T, c *valueContext) {
			c.count++
			c.months[3] = "March"
			c.numbers = append(c.numbers, 4)
			m.AssertThat(t, c.count, m.Equal(1))
			m.AssertThat(t, c.months, m.HasLength(3))
		}),

		ldtest.ItWith("never sees changes made by another example", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.count, m.Equal(0))
			m.AssertThat(t, c.months, m.Not(m.HasKey(3)))
			m.AssertThat(t, c.numbers, m.HasLength(3))
		}),
	)
}

func (s *Suite) cleanupContextExamples() ldtest.ExampleGroup {
	return ldtest.Describe("cleanup contexts",
		ldtest.ItWith("writes a record", s.newRecordContext, func(t *ldtest.T, r *recordContext) {
			key := r.put(t, "Tel Aviv")
			value, found := r.get(t, key)
			require.True(t, found)
			m.AssertThat(t, value, m.Equal("Tel Aviv"))
		}),

		ldtest.ItWith("starts with the previous record reverted", s.newRecordContext, func(t *ldtest.T, r *recordContext) {
			m.RequireThat(t, r.store.size(), m.Equal(0))
			r.put(t, "Haifa")
			m.AssertThat(t, r.store.size(), m.Equal(1))
		}),
	)
}

func pendingExamples() ldtest.ExampleGroup {
	return ldtest.Describe("pending",
		ldtest.PendingIt("handles leap years", "not implemented yet"),

		ldtest.It("can decide to be pending partway through", func(t *ldtest.T) {
			t.Pending("waiting for a real database")
		}),
	)
}
