package matchers

import (
	"fmt"
	"strings"

	"github.com/onsi/gomega"
)

// ContainsSubstring passes if the actual value is a string containing the substring.
func ContainsSubstring(substring string) Matcher {
	return wrap(fmt.Sprintf("contain %q", substring), gomega.ContainSubstring(substring))
}

// HasSuffix passes if the actual value is a string ending with the suffix.
func HasSuffix(suffix string) Matcher {
	return wrap(fmt.Sprintf("end with %q", suffix), gomega.HaveSuffix(suffix))
}

// HasPrefix passes if the actual value is a string starting with the prefix.
func HasPrefix(prefix string) Matcher {
	return wrap(fmt.Sprintf("start with %q", prefix), gomega.HavePrefix(prefix))
}

// EqualFold passes if the actual value is a string equal to the expected string, ignoring case.
func EqualFold(expected string) Matcher {
	return wrap(fmt.Sprintf("equal %q ignoring case", expected),
		gomega.WithTransform(strings.ToLower, gomega.Equal(strings.ToLower(expected))))
}
