// All the pages (p.) references are to Cryptography Engineering, N. Ferguson,
// B. Schneier, T. Kohno, ISBN 978-0-470-47424-2.

package fortuna

import (
	"crypto/aes"
	"encoding/binary"
)

// maxWordsPerBurst is MAX_WORDS_PER_BURST: the number of words emitted
// between two gates within a single RandomWords call.
const maxWordsPerBurst = 65536

// gen4 increments the counter and encrypts it under the current cipher,
// returning one 4-word (128-bit) output block. Callers must hold g.mu.
func (g *Generator) gen4() [4]uint32 {
	g.counter.incr()
	block := g.counter.bytes()
	var out [16]byte
	g.cipher.Encrypt(out[:], block[:])
	return wordsFromBlock(out)
}

// gate rekeys the output cipher from its own next two output blocks (256
// bits of fresh keystream), per p. 143: an attacker who later compromises
// the generator's state cannot recover output already delivered. Callers
// must hold g.mu.
func (g *Generator) gate() {
	a := g.gen4()
	b := g.gen4()

	var key [32]byte
	for i, w := range a {
		binary.LittleEndian.PutUint32(key[i*4:], w)
	}
	for i, w := range b {
		binary.LittleEndian.PutUint32(key[16+i*4:], w)
	}
	g.key = key

	block, err := aes.NewCipher(g.key[:])
	if err != nil {
		// Only possible error is a bad key size, which cannot happen for a
		// fixed 32-byte key.
		panic(err)
	}
	g.cipher = block
}

// RandomWords reseeds when the readiness oracle requires it, then emits
// exactly nwords 32-bit words in bursts of 4, gating the cipher every
// maxWordsPerBurst words and once more after the loop regardless of nwords,
// so RandomWords(0) still gates.
func (g *Generator) RandomWords(nwords uint, paranoia *uint) ([]uint32, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reseedIfForkedLocked()

	state, err := g.isReadyLocked(paranoia)
	if err != nil {
		return nil, err
	}
	switch state {
	case RequiresReseed | Ready:
		g.reseedFromPools(false)
	case Ready:
		// Nothing to do.
	default:
		// NotReady and RequiresReseed|NotReady both fail: the oracle never
		// permits output without the Ready bit set.
		return nil, ErrNotReady
	}

	out := make([]uint32, 0, nwords)
	emitted := uint(0)
	for uint(len(out)) < nwords {
		blk := g.gen4()
		out = append(out, blk[:]...)
		emitted += 4
		if emitted%maxWordsPerBurst == 0 {
			g.gate()
		}
	}
	if uint(len(out)) > nwords {
		out = out[:nwords]
	}
	g.gate()
	return out, nil
}
