package matchers

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/onsi/gomega"
)

// asPanicking turns a func() error into a func() that panics with any error it returns, so
// that returned and panicked errors can both be checked with gomega's Panic matchers. Any
// other value is passed through for Panic to accept or reject.
func asPanicking(actual interface{}) interface{} {
	if fn, ok := actual.(func() error); ok {
		return func() {
			if err := fn(); err != nil {
				panic(err)
			}
		}
	}
	return actual
}

// ProducesAnyError passes if calling the actual value, which must be a func() error or a
// func(), returns a non-nil error or panics.
func ProducesAnyError() Matcher {
	return wrap("produce an error", gomega.WithTransform(asPanicking, gomega.Panic()))
}

// ProducesError passes if calling the actual value, which must be a func() error or a func(),
// produces an error that matches target according to errors.Is. A panic whose value is not
// an error cannot be checked against target, and is reported as such.
func ProducesError(target error) Matcher {
	return wrap(fmt.Sprintf("produce the error %q", target),
		gomega.WithTransform(asPanicking, gomega.PanicWith(gomega.MatchError(target))))
}

// ProducesErrorOfType passes if calling the actual value, which must be a func() error or a
// func(), produces an error of type E, or one wrapping such an error, as determined by
// errors.As.
//
//	matchers.ProducesErrorOfType[*strconv.NumError]()
func ProducesErrorOfType[E error]() Matcher {
	isKind := func(err error) bool {
		var target E
		return errors.As(err, &target)
	}
	name := reflect.TypeOf((*E)(nil)).Elem().String()
	return wrap("produce an error of type "+name,
		gomega.WithTransform(asPanicking, gomega.PanicWith(gomega.Satisfy(isKind))))
}
