//go:build csc_debug

package cascade

// dcheck panics when an internal invariant does not hold. It is compiled in
// only with the csc_debug build tag.
func dcheck(cond bool, msg string) {
	if !cond {
		panic("cascade: " + msg)
	}
}
