package fortuna

// initCollectorSubmissions is the number of platform-word submissions fed
// to the generator when StartCollectors runs.
const initCollectorSubmissions = 48

// StartCollectors feeds an initial burst of platform-sourced entropy and
// marks collectors as started. It is idempotent: a second call is a no-op.
// A single collectorsOn flag tracks the started/stopped state.
func (g *Generator) StartCollectors() error {
	g.mu.Lock()
	if g.collectorsOn {
		g.mu.Unlock()
		return nil
	}
	g.collectorsOn = true
	platform := g.cfg.Platform
	g.mu.Unlock()

	one := uint32(1)
	for i := 0; i < initCollectorSubmissions; i++ {
		if err := g.AddEntropy(Word(platform.Word()), &one, "init"); err != nil {
			return err
		}
	}
	return nil
}

// StopCollectors marks collectors as stopped. It is idempotent: calling it
// when not started is a no-op.
func (g *Generator) StopCollectors() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.collectorsOn = false
}

// CollectorsStarted reports whether StartCollectors has run since the last
// StopCollectors.
func (g *Generator) CollectorsStarted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.collectorsOn
}

// AddPointerEvent feeds a pointer-move sample: 2 estimated bits, sourceTag "mouse".
func (g *Generator) AddPointerEvent(x, y int32) error {
	bits := uint32(2)
	return g.AddEntropy(Words{uint32(x), uint32(y)}, &bits, "mouse")
}

// AddKeystroke feeds a single keystroke's character or key code, per
// a single estimated bit, sourceTag "keyboard".
func (g *Generator) AddKeystroke(code int32) error {
	bits := uint32(1)
	return g.AddEntropy(Word(uint32(code)), &bits, "keyboard")
}

// AddAccelerometerSample feeds an accelerometer reading: 3 estimated bits,
// sourceTag "accelerometer". When the host has no orientation reading, pass
// an empty string.
func (g *Generator) AddAccelerometerSample(ax, ay, az float64, orientation string) error {
	bits := uint32(3)
	payload := Words{
		floatBitsToWord(ax),
		floatBitsToWord(ay),
		floatBitsToWord(az),
		uint32(len(orientation)),
	}
	return g.AddEntropy(payload, &bits, "accelerometer")
}

// AddLocationContext feeds a host-provided location or context string (for
// example a session or cookie identifier) under the given sourceTag, with
// zero claimed entropy.
func (g *Generator) AddLocationContext(value, sourceTag string) error {
	zero := uint32(0)
	return g.AddEntropy(Text(value), &zero, sourceTag)
}

// floatBitsToWord folds a float64 sample into a 32-bit word for entropy
// accounting purposes: the sample is scaled by 1e6, truncated toward zero,
// and only the low 32 bits of the result are kept, which is sufficient since
// the claimed entropy (3 bits total across the triple) is far below the
// word's capacity.
func floatBitsToWord(f float64) uint32 {
	bits := int64(f * 1e6)
	return uint32(bits)
}
