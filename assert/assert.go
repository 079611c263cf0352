// The assert package provides checks for conditions that indicate
// programming errors (caller/asset mismatches), not recoverable runtime
// failures. A failed assert panics with the formatted message.
package assert

import "fmt"

// T panics with a formatted message if check is false
func T(check bool, msgFmt string, args ...any) {

	if check {
		return
	}

	panic(fmt.Sprintf("Assert failed: "+msgFmt, args...))
}
