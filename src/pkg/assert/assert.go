package assert

import "fmt"

// Assert panics when cond is false. Use for programmer errors only,
// never for conditions an operator can trigger.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
