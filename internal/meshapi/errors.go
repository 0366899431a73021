package meshapi

import "fmt"

// Invariant panics with msg if cond is false. The core uses this only for
// programming-invariant violations (spec.md §7's "missing required tag"
// case), never for recoverable conditions.
func Invariant(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("meshapi: invariant violated: "+msg, args...))
	}
}
