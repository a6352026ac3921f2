//go:build windows

package fortuna

// reseedIfForkedLocked is a no-op on Windows: the platform has no fork(2)
// equivalent, so there is no risk of duplicated generator state across a
// fork, grounded on sixafter/aes-ctr-drbg's drbg_fork_windows.go. Callers
// must hold g.mu.
func (g *Generator) reseedIfForkedLocked() {}
