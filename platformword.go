package fortuna

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// PlatformSource supplies opportunistic 32-bit random words, used both when
// folding a timestamp/word into each entropy submission's header and as the
// 16 platform words mixed into every reseed. A host without a cryptographic
// source may substitute a non-cryptographic one — the pool design still
// converges given real entropy from the collectors — but any credit given
// to such words must stay at estimatedBits=1, which callers enforce, not
// PlatformSource itself.
type PlatformSource interface {
	Word() uint32
}

// systemPlatformSource reads words from crypto/rand, the host's actual
// cryptographic primitive. It is the default PlatformSource.
type systemPlatformSource struct {
	mu  sync.Mutex
	buf [4]byte
}

// NewSystemPlatformSource returns the default PlatformSource, backed
// directly by crypto/rand.Reader.
func NewSystemPlatformSource() PlatformSource {
	return &systemPlatformSource{}
}

func (s *systemPlatformSource) Word() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.ReadFull(rand.Reader, s.buf[:]); err != nil {
		// crypto/rand.Reader is documented to never fail on supported
		// platforms; a failure here means the host's entropy source is
		// broken in a way no fallback can safely paper over.
		panic("fortuna: crypto/rand unavailable: " + err.Error())
	}
	return binary.BigEndian.Uint32(s.buf[:])
}

// fastPlatformSource is a non-cryptographic substitute:
// a pooled ChaCha20 stream reseeded periodically from crypto/rand, in the
// style of sixafter/prng-chacha's Reader/prng. It trades the per-call
// syscall of systemPlatformSource for throughput, at the cost of being only
// as strong as its last ChaCha20 reseed between refreshes; callers using it
// still account submissions conservatively at estimatedBits=1.
type fastPlatformSource struct {
	mu         sync.Mutex
	stream     *chacha20.Cipher
	used       uint64
	rekeyAfter uint64
}

// NewFastPlatformSource returns a ChaCha20-backed PlatformSource that
// rekeys itself from crypto/rand every rekeyAfterWords words (a value <= 0
// selects a default of 1<<20 words).
func NewFastPlatformSource(rekeyAfterWords int64) PlatformSource {
	n := rekeyAfterWords
	if n <= 0 {
		n = 1 << 20
	}
	s := &fastPlatformSource{rekeyAfter: uint64(n)}
	s.rekey()
	return s
}

func (s *fastPlatformSource) rekey() {
	key := make([]byte, chacha20.KeySize)
	nonce := make([]byte, chacha20.NonceSize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		panic("fortuna: crypto/rand unavailable: " + err.Error())
	}
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		panic("fortuna: crypto/rand unavailable: " + err.Error())
	}
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic("fortuna: chacha20 cipher setup failed: " + err.Error())
	}
	for i := range key {
		key[i] = 0
	}
	s.stream = stream
	s.used = 0
}

func (s *fastPlatformSource) Word() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.used >= s.rekeyAfter {
		s.rekey()
	}
	var zero, out [4]byte
	s.stream.XORKeyStream(out[:], zero[:])
	s.used++
	return binary.BigEndian.Uint32(out[:])
}
