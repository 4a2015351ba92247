// Package sample contains the class that the example suite is written against.
package sample

import "fmt"

var elements = []string{"hydrogen", "helium", "lithium"}

// MyClass is a small type with a few methods that are easy to write examples for.
type MyClass struct{}

// IndexError is returned by Element for an index outside the list.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for %d elements", e.Index, e.Size)
}

func (MyClass) IsAwesome() bool { return true }

func (MyClass) Hello() string { return "Hello world" }

// Prime reports whether n is a prime number.
func (MyClass) Prime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Element returns the name of the nth element, counting from zero.
func (MyClass) Element(n int) (string, error) {
	if n < 0 || n >= len(elements) {
		return "", &IndexError{Index: n, Size: len(elements)}
	}
	return elements[n], nil
}
