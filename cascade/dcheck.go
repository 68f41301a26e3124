//go:build !csc_debug

package cascade

func dcheck(bool, string) {}
