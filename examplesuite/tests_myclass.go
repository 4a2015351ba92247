package examplesuite

import (
	"github.com/launchdarkly/bdd-examples/framework/ldtest"
	m "github.com/launchdarkly/bdd-examples/matchers"
	"github.com/launchdarkly/bdd-examples/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func myClassExamples() ldtest.ExampleGroup {
	var c sample.MyClass

	return ldtest.Describe("MyClass",
		ldtest.It("is awesome", func(t *ldtest.T) {
			assert.True(t, c.IsAwesome())
		}),

		ldtest.It("says hello", func(t *ldtest.T) {
			m.AssertThat(t, c.Hello(), m.Equal("Hello world"))
		}),

		ldtest.It("knows that 7 is prime", func(t *ldtest.T) {
			assert.True(t, c.Prime(7))
		}),

		ldtest.It("knows that 8 is not prime", func(t *ldtest.T) {
			assert.False(t, c.Prime(8))
		}),

		ldtest.It("finds an element by position", func(t *ldtest.T) {
			e, err := c.Element(0)
			require.NoError(t, err)
			m.AssertThat(t, e, m.Equal("hydrogen"))
		}),
	)
}
