package fortuna

import "errors"

var (
	// ErrNotReady is returned by RandomWords when the readiness oracle
	// reports any NOT_READY state for the requested paranoia level. Callers
	// may retry after supplying more entropy or after the "seeded" event
	// fires.
	ErrNotReady = errors.New("fortuna: generator is not ready")

	// ErrInvalidInput is returned by AddEntropy when data carries a type the
	// router does not recognize, or is a Word submitted without an
	// estimatedBits value.
	ErrInvalidInput = errors.New("fortuna: invalid entropy input")

	// ErrParanoiaOutOfRange is returned when a paranoia level falls outside
	// [0, 10].
	ErrParanoiaOutOfRange = errors.New("fortuna: paranoia level out of range")

	// ErrSelfTestFailed indicates the AES known-answer power-on self-test
	// did not reproduce the expected ciphertext.
	ErrSelfTestFailed = errors.New("fortuna: AES self-test failed")

	// ErrNoPersistStore is returned by SavePersisted/LoadPersisted when the
	// generator was not configured with a PersistStore.
	ErrNoPersistStore = errors.New("fortuna: no persist store configured")
)
