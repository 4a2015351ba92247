package matchers

import (
	"fmt"
	"unicode/utf8"

	"github.com/onsi/gomega"
)

// HasLength passes if the actual value is a string, slice, array, map, or channel of the
// given length. A string's length is its number of characters, not bytes. A map's length is
// its number of keys.
func HasLength(length int) Matcher {
	description := fmt.Sprintf("have length %d", length)
	byLen := gomega.HaveLen(length)
	return New(description, func(actual interface{}) (bool, error) {
		if s, ok := actual.(string); ok {
			return utf8.RuneCountInString(s) == length, nil
		}
		return byLen.Match(actual)
	})
}

// IsEmpty passes if the actual value is a string, slice, array, map, or channel of length zero.
func IsEmpty() Matcher {
	return wrap("be empty", gomega.BeEmpty())
}

// Contains passes if the actual value is a slice or array with an element equal to the item,
// using the same loose equality as Equal. For a map, the values are searched. Use
// Not(Contains(item)) to check that an item is absent.
func Contains(item interface{}) Matcher {
	return wrap("contain "+describeValue(item), gomega.ContainElement(equivalentTo(item)))
}
