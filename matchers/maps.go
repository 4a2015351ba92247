package matchers

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega"
)

// Keys and values in these matchers are compared with the same loose equality as Equal, so
// that HasKey(1) works for a map[int64]string.

// HasEntry passes if the actual value is a map containing the key with the given value.
func HasEntry(key, value interface{}) Matcher {
	return wrap(fmt.Sprintf("have entry %s: %s", describeValue(key), describeValue(value)),
		gomega.HaveKeyWithValue(equivalentTo(key), equivalentTo(value)))
}

// HasKey passes if the actual value is a map containing the key. Use Not(HasKey(key)) to
// check that a key is absent.
func HasKey(key interface{}) Matcher {
	return wrap("have key "+describeValue(key), gomega.HaveKey(equivalentTo(key)))
}

// ValuesContain passes if the actual value is a map in which at least one value is equal to
// the given value.
func ValuesContain(value interface{}) Matcher {
	return wrap("have a value "+describeValue(value), gomega.SatisfyAll(
		gomega.WithTransform(mapOnly, gomega.BeTrue()),
		gomega.ContainElement(equivalentTo(value)),
	))
}

// mapOnly rejects anything other than a map, since ContainElement would also search slices.
func mapOnly(actual interface{}) (bool, error) {
	if actual == nil || reflect.TypeOf(actual).Kind() != reflect.Map {
		return false, fmt.Errorf("expected a map, got %T", actual)
	}
	return true, nil
}
