//go:build !convdebug

package checks

// Enabled reports whether strict precondition checking is compiled in.
const Enabled = false

// Ok reports cond. Callers treat a false result as a silent no-op.
func Ok(cond bool, _ string) bool {
	return cond
}
