package assert

import "fmt"

// T panics with a formatted message if check is false.
// Used for programmer errors only; data errors are returned as error values.
func T(check bool, msgFmt string, args ...any) {

	if check {
		return
	}

	panic(fmt.Sprintf("assert failed: "+msgFmt, args...))
}
