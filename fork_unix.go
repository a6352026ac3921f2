//go:build !windows

package fortuna

import "os"

// reseedIfForkedLocked forces a full reseed when the process id has drifted
// since the last check, detecting a fork(2) that would otherwise duplicate
// the generator's state into parent and child, grounded on
// sixafter/aes-ctr-drbg's drbg_fork.go. Callers must hold g.mu.
func (g *Generator) reseedIfForkedLocked() {
	if g.cfg.DisableForkDetection {
		return
	}
	current := os.Getpid()
	if current != g.pid {
		g.pid = current
		if g.cipher != nil {
			g.reseedFromPools(true)
		}
	}
}
