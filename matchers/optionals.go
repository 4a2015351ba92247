package matchers

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// optionalValue unwraps the kinds of optional values that these matchers understand: the
// ldvalue optional types, and pointers, where nil means there is no value. An absent value
// is returned as nil.
func optionalValue(actual interface{}) (interface{}, error) {
	switch o := actual.(type) {
	case nil:
		return nil, nil
	case ldvalue.OptionalString:
		if o.IsDefined() {
			return o.StringValue(), nil
		}
		return nil, nil
	case ldvalue.OptionalInt:
		if o.IsDefined() {
			return o.IntValue(), nil
		}
		return nil, nil
	case ldvalue.OptionalBool:
		if o.IsDefined() {
			return o.BoolValue(), nil
		}
		return nil, nil
	}
	if v := reflect.ValueOf(actual); v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, nil
		}
		return v.Elem().Interface(), nil
	}
	return nil, fmt.Errorf("%T is not an optional value or a pointer", actual)
}

// OptionalOf passes if the actual value is an optional value that is present and equal to
// the expected value.
func OptionalOf(expected interface{}) Matcher {
	return wrap("have the value "+describeValue(expected), gomega.WithTransform(optionalValue,
		gomega.SatisfyAll(gomega.Not(gomega.BeNil()), equivalentTo(expected))))
}

// OptionalEmpty passes if the actual value is an optional value that is absent.
func OptionalEmpty() Matcher {
	return wrap("have no value", gomega.WithTransform(optionalValue, gomega.BeNil()))
}
