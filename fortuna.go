package fortuna

import (
	"crypto/aes"
	"crypto/cipher"
	"os"
	"sync"
	"time"
)

// millisecondsPerReseed is MILLISECONDS_PER_RESEED, the default minimum
// wall-clock delay between time-triggered reseeds.
const millisecondsPerReseed = 30000

// bitsPerReseed is BITS_PER_RESEED: the pool-0 entropy-bit threshold that
// must be exceeded before a time-triggered reseed is allowed to fire.
const bitsPerReseed = 80

// Generator holds the entropy pools, working key, output cipher, and
// bookkeeping for one Fortuna-style CSPRNG core. The zero value is not
// usable; construct one with NewGenerator.
type Generator struct {
	mu sync.Mutex

	pools       []hashPool
	poolBits    []uint32
	reseedCount uint32
	robins      map[string]int
	sourceIDs   map[string]int
	eventSeq    uint64

	key     [32]byte
	counter counter128
	cipher  cipher.Block

	workingStrength uint32
	poolStrength    uint32
	nextReseed      time.Time
	defaultParanoia uint
	collectorsOn    bool

	listeners eventDispatcher
	pid       int
	cfg       Config
}

// NewGenerator constructs an independent Generator, applying DefaultConfig
// and then opts in order. It runs the AES known-answer self-test once
// before returning, unless WithoutSelfTest was passed.
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.DefaultParanoia > 10 {
		return nil, ErrParanoiaOutOfRange
	}
	if !cfg.SkipSelfTest {
		if err := runSelfTests(); err != nil {
			return nil, err
		}
	}

	g := &Generator{
		pools:           []hashPool{newHashPool()},
		poolBits:        []uint32{0},
		robins:          make(map[string]int),
		sourceIDs:       make(map[string]int),
		defaultParanoia: cfg.DefaultParanoia,
		nextReseed:      time.Now().Add(cfg.ReseedInterval),
		listeners:       newEventDispatcher(),
		pid:             os.Getpid(),
		cfg:             cfg,
	}
	// The working key starts at its zero value rather than undefined, so the
	// cipher is always installed: a generator that becomes Ready at paranoia
	// level 0 without ever reseeding (PARANOIA_LEVELS[0] is 0 bits) can still
	// produce output, just from an unkeyed stream as weak as the entropy
	// that's actually been folded in.
	block, err := aes.NewCipher(g.key[:])
	if err != nil {
		panic(err)
	}
	g.cipher = block
	return g, nil
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
	defaultErr  error
)

// Default returns the process-wide singleton Generator, constructing it on
// first use with NewGenerator's defaults. This is an explicit,
// opt-in singleton rather than an implicit global: callers who want an
// independent instance should call NewGenerator directly instead.
func Default() (*Generator, error) {
	defaultOnce.Do(func() {
		defaultGen, defaultErr = NewGenerator()
	})
	return defaultGen, defaultErr
}

// SetDefaultParanoia updates the paranoia level consulted when IsReady,
// GetProgress, and RandomWords are called without an explicit level.
func (g *Generator) SetDefaultParanoia(level uint) error {
	if level > 10 {
		return ErrParanoiaOutOfRange
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.defaultParanoia = level
	return nil
}

// PoolStrengthBytes returns the estimated entropy currently banked across
// all pools, in bytes (bits rounded down to the nearest whole byte).
func (g *Generator) PoolStrengthBytes() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return uint64(g.poolStrength / 8)
}

// NextReseedAt returns the earliest wall-clock time at which a time-triggered
// reseed is next allowed to fire. It reflects the deadline set by the most
// recent reseed (or construction, if none has run yet).
func (g *Generator) NextReseedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextReseed
}

// AddEventListener registers fn under the given event name ("progress" or
// "seeded") and returns a handle for RemoveEventListener.
func (g *Generator) AddEventListener(name string, fn Listener) ListenerHandle {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.listeners.add(name, fn)
}

// RemoveEventListener unregisters the listener identified by h. Removing an
// unknown or already-removed handle is a no-op.
func (g *Generator) RemoveEventListener(h ListenerHandle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners.remove(h)
}
