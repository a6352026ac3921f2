package fortuna

import "testing"

// fixedWord is a PlatformSource test double that always returns the same
// word, so reseed/submission headers are deterministic across a test run.
type fixedWord uint32

func (f fixedWord) Word() uint32 { return uint32(f) }

// newTestGenerator builds a Generator with the self-test and per-call fork
// check disabled, suitable for white-box tests that reach into unexported
// fields and methods directly.
func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	base := []Option{WithoutSelfTest(), WithoutForkDetection(), WithPlatformSource(fixedWord(0x11223344))}
	g, err := NewGenerator(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return g
}

func ptrUint32(v uint32) *uint32 { return &v }

func ptrUint(v uint) *uint { return &v }
