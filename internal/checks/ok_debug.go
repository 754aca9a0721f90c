//go:build convdebug

package checks

// Enabled reports whether strict precondition checking is compiled in.
const Enabled = true

// Ok panics with msg when cond is false; otherwise it reports true.
func Ok(cond bool, msg string) bool {
	if !cond {
		panic(msg)
	}
	return true
}
