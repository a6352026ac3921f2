package fortuna

import "time"

// Config holds the tunable, non-secret parameters of a Generator. It is
// built from DefaultConfig and a list of Option values, in the style of
// sixafter/prng-chacha's and sixafter/aes-ctr-drbg's Config types.
type Config struct {
	// DefaultParanoia is the paranoia level ([0,10]) used by IsReady,
	// GetProgress, and RandomWords when no explicit level is supplied.
	DefaultParanoia uint

	// ReseedInterval is the minimum wall-clock delay between time-triggered
	// reseeds. It defaults to 30s.
	ReseedInterval time.Duration

	// BitsPerReseed is the pool-0 entropy-bit threshold that must be
	// exceeded before a time-triggered reseed is allowed to fire. Defaults
	// to 80.
	BitsPerReseed uint32

	// Platform supplies opportunistic random words for reseeding and for
	// the "init" collector burst. Defaults to a crypto/rand-backed source.
	Platform PlatformSource

	// Persist, if set, is consulted by LoadPersisted/SavePersisted to
	// restore and checkpoint a zero-entropy stirring blob across restarts.
	Persist PersistStore

	// DisableForkDetection skips the os.Getpid() drift check that forces a
	// full reseed after a process fork. Leave false in production; tests
	// that construct many generators in a tight loop may set this to avoid
	// the per-call syscall.
	DisableForkDetection bool

	// SkipSelfTest skips the one-time AES known-answer power-on self-test.
	// Intended for tests only.
	SkipSelfTest bool
}

// Option mutates a Config during NewGenerator.
type Option func(*Config)

// DefaultConfig returns the Config used when NewGenerator is called with no
// options: paranoia 0, the default reseed cadence, and a
// crypto/rand-backed platform source.
func DefaultConfig() Config {
	return Config{
		DefaultParanoia: 0,
		ReseedInterval:  time.Duration(millisecondsPerReseed) * time.Millisecond,
		BitsPerReseed:   bitsPerReseed,
		Platform:        NewSystemPlatformSource(),
	}
}

// WithDefaultParanoia sets the paranoia level consulted when callers omit
// one. It is validated against [0, 10] at NewGenerator time.
func WithDefaultParanoia(level uint) Option {
	return func(c *Config) { c.DefaultParanoia = level }
}

// WithReseedInterval overrides the minimum time-triggered reseed delay.
func WithReseedInterval(d time.Duration) Option {
	return func(c *Config) { c.ReseedInterval = d }
}

// WithPlatformSource overrides the source of opportunistic random words used
// during reseeds and the "init" collector burst. NewFastPlatformSource
// provides a pooled ChaCha20-backed alternative for hosts that want to
// substitute a cheaper, non-cryptographic source; such a substitution cannot
// reduce the generator's entropy, only the credit given to it.
func WithPlatformSource(s PlatformSource) Option {
	return func(c *Config) { c.Platform = s }
}

// WithPersistStore attaches a PersistStore used by LoadPersisted/SavePersisted.
func WithPersistStore(s PersistStore) Option {
	return func(c *Config) { c.Persist = s }
}

// WithoutForkDetection disables the per-call os.Getpid() drift check.
func WithoutForkDetection() Option {
	return func(c *Config) { c.DisableForkDetection = true }
}

// WithoutSelfTest skips the AES known-answer self-test. Intended for tests.
func WithoutSelfTest() Option {
	return func(c *Config) { c.SkipSelfTest = true }
}
