// Package fortuna implements a Fortuna-style cryptographically secure
// pseudo-random number generator, as designed by Niels Ferguson and Bruce
// Schneier in Cryptography Engineering (ISBN 978-0-470-47424-2), adapted for
// hosts that must become usable quickly and cannot rely on a persisted seed
// file being present at startup.
//
// A Generator accumulates entropy submissions into a growing bank of SHA-256
// pools, reseeds an AES-256-CTR output stage from a Fortuna-scheduled subset
// of those pools, and rekeys ("gates") its own cipher at burst boundaries and
// after every output request so that a compromise of the generator's state
// cannot be used to recover previously emitted output.
//
// Unlike the book's original design, readiness is gated by a "paranoia"
// level: callers choose how many bits of accumulated entropy they require
// before RandomWords will produce output, rather than relying on a fixed
// minimum pool size and wall-clock delay alone.
//
// Host-specific entropy collection (mouse movement, keystrokes, a platform
// random primitive, a persisted seed blob) is intentionally kept outside
// this package; a host feeds the generator through AddPointerEvent,
// AddKeystroke, AddAccelerometerSample, and AddLocationContext, and wires in
// its own platform randomness and checkpoint storage via the PlatformSource
// and PersistStore interfaces.
package fortuna
