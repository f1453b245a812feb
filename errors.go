package zecs

import (
	"errors"
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// ErrOutOfMemory is returned by any operation that failed to grow a
// column while adding a table row; directory growth never fails. A
// single-entity operation returning it leaves every entity and its
// component data as they were before the call, but an archetype table
// created during the call stays in place, empty. The batch spawn
// functions keep the entities they created before the failure.
var ErrOutOfMemory = errors.New("zecs: out of memory")

// assertf panics with a traced error when cond is false. It is used for
// the programmer-error class of failure (misuse of the API), never for
// recoverable allocation failures.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(bark.AddTrace(fmt.Errorf(format, args...)))
	}
}
