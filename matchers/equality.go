package matchers

import (
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

func isNumber(value interface{}) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// equivalentTo compares numbers by value and everything else with gomega's BeEquivalentTo.
// BeEquivalentTo alone would convert 1.5 to an int before comparing it with 1.
func equivalentTo(expected interface{}) types.GomegaMatcher {
	if isNumber(expected) {
		return gomega.BeNumerically("==", expected)
	}
	return gomega.BeEquivalentTo(expected)
}

// Equal passes if the actual value is equal to the expected value. Numbers of different types
// are equal if they have the same value, so Equal(1) passes for int64(1). Other values are
// compared after converting the actual value to the expected value's type where possible. Use
// StrictlyEqual to also require the same type.
func Equal(expected interface{}) Matcher {
	return wrap("equal "+describeValue(expected), equivalentTo(expected))
}

// StrictlyEqual passes if the actual value has the same type as the expected value and is
// deeply equal to it.
func StrictlyEqual(expected interface{}) Matcher {
	return wrap("strictly equal "+describeValue(expected), gomega.Equal(expected))
}
