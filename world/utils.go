package world

import "fmt"

// Check panics if e is not nil. The world only uses it for states that mean
// the code itself is wrong, never for bad input.
func Check(e error) {
	if e != nil {
		panic(e)
	}
}

func checkf(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Errorf(format, args...))
	}
}
