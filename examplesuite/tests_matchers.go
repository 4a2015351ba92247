package examplesuite

import (
	"strconv"

	"github.com/launchdarkly/bdd-examples/framework/ldtest"
	m "github.com/launchdarkly/bdd-examples/matchers"
	"github.com/launchdarkly/bdd-examples/sample"

	"github.com/onsi/gomega"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func equalityExamples() ldtest.ExampleGroup {
	return ldtest.Describe("equality",
		ldtest.It("1 equals 1", func(t *ldtest.T) {
			m.AssertThat(t, 1, m.Equal(1))
		}),

		ldtest.It("checks the type as well as the value when asked to", func(t *ldtest.T) {
			m.AssertThat(t, int64(1), m.StrictlyEqual(int64(1)))
			m.AssertThat(t, int64(1), m.Not(m.StrictlyEqual(1)))
		}),

		ldtest.It("1 does not equal 2", func(t *ldtest.T) {
			m.AssertThat(t, 1, m.Not(m.Equal(2)))
		}),
	)
}

func stringExamples() ldtest.ExampleGroup {
	return ldtest.Describe("strings",
		ldtest.ItWith("contains a substring", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.address, m.ContainsSubstring("Tel Aviv"))
		}),

		ldtest.ItWith("ends with a suffix", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.address, m.HasSuffix("Israel"))
		}),

		ldtest.ItWith("has an exact length", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.address, m.HasLength(32))
		}),

		ldtest.It("equals another string ignoring case", func(t *ldtest.T) {
			m.AssertThat(t, "Tel Aviv", m.EqualFold("TEL AVIV"))
		}),
	)
}

func numberExamples() ldtest.ExampleGroup {
	return ldtest.Describe("numbers",
		ldtest.It("is at least a minimum", func(t *ldtest.T) {
			m.AssertThat(t, 10, m.AtLeast(10))
		}),

		ldtest.It("is greater than a bound", func(t *ldtest.T) {
			m.AssertThat(t, 10, m.GreaterThan(9))
		}),

		ldtest.It("is within an inclusive range", func(t *ldtest.T) {
			m.AssertThat(t, 25, m.Between(0, 100))
			m.AssertThat(t, 150, m.Not(m.Between(0, 100)))
		}),
	)
}

func optionalValueExamples() ldtest.ExampleGroup {
	return ldtest.Describe("optional values",
		ldtest.ItWith("has a value", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.name, m.OptionalOf("Bob"))
		}),

		ldtest.ItWith("has no value", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.nickname, m.OptionalEmpty())
		}),

		ldtest.It("treats a nil pointer as having no value", func(t *ldtest.T) {
			var age *int
			m.AssertThat(t, age, m.OptionalEmpty())
			m.AssertThat(t, ldvalue.NewOptionalInt(42), m.OptionalOf(42))
		}),
	)
}

func collectionExamples() ldtest.ExampleGroup {
	return ldtest.Describe("collections",
		ldtest.It("is empty", func(t *ldtest.T) {
			m.AssertThat(t, []string{}, m.IsEmpty())
		}),

		ldtest.ItWith("contains an element", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.numbers, m.Contains(2))
		}),

		ldtest.ItWith("does not contain an element", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.numbers, m.Not(m.Contains(4)))
		}),
	)
}

func mapExamples() ldtest.ExampleGroup {
	return ldtest.Describe("maps",
		ldtest.ItWith("has a key-value pair", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.months, m.HasEntry(1, "January"))
		}),

		ldtest.ItWith("lacks a key", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.months, m.Not(m.HasKey(12)))
		}),

		ldtest.ItWith("has a number of keys", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.months, m.HasLength(2))
		}),

		ldtest.ItWith("has a value", newValueContext, func(t *ldtest.T, c *valueContext) {
			m.AssertThat(t, c.months, m.ValuesContain("February"))
		}),

		ldtest.ItWith("can be checked with gomega directly", newValueContext, func(t *ldtest.T, c *valueContext) {
			g := gomega.NewWithT(t)
			g.Expect(c.months).To(m.HasEntry(2, "February"))
			g.Expect(c.months).NotTo(m.HasKey(12))
		}),
	)
}

func errorExamples() ldtest.ExampleGroup {
	var c sample.MyClass

	return ldtest.Describe("errors",
		ldtest.It("produces an error of a specific type", func(t *ldtest.T) {
			outOfRange := func() error {
				_, err := c.Element(10)
				return err
			}
			m.AssertThat(t, outOfRange, m.ProducesErrorOfType[*sample.IndexError]())
		}),

		ldtest.It("produces a specific error", func(t *ldtest.T) {
			parse := func() error {
				_, err := strconv.Atoi("forty")
				return err
			}
			m.AssertThat(t, parse, m.ProducesError(strconv.ErrSyntax))
		}),

		ldtest.It("produces an error by panicking", func(t *ldtest.T) {
			var months map[int]string
			m.AssertThat(t, func() { months[1] = "January" }, m.ProducesAnyError())
		}),
	)
}
