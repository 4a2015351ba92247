package matchers

import (
	"fmt"

	"github.com/onsi/gomega"
)

// Numbers of any built-in numeric type can be compared with each other. A bound that is not a
// number makes every check fail with an error.

// AtLeast passes if the actual value is a number greater than or equal to the minimum.
func AtLeast(minimum interface{}) Matcher {
	return wrap(fmt.Sprintf("be at least %v", minimum), gomega.BeNumerically(">=", minimum))
}

// GreaterThan passes if the actual value is a number strictly greater than the bound.
func GreaterThan(bound interface{}) Matcher {
	return wrap(fmt.Sprintf("be greater than %v", bound), gomega.BeNumerically(">", bound))
}

// AtMost passes if the actual value is a number less than or equal to the maximum.
func AtMost(maximum interface{}) Matcher {
	return wrap(fmt.Sprintf("be at most %v", maximum), gomega.BeNumerically("<=", maximum))
}

// Between passes if the actual value is a number in the inclusive range from low to high.
func Between(low, high interface{}) Matcher {
	return wrap(fmt.Sprintf("be between %v and %v", low, high), gomega.SatisfyAll(
		gomega.BeNumerically(">=", low),
		gomega.BeNumerically("<=", high),
	))
}
