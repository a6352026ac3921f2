package fortuna

import (
	"crypto/aes"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// reseedFromPools folds a Fortuna-scheduled prefix of pools, platform
// entropy, and a timestamp into the working key. Callers must hold g.mu.
//
// When full is true every pool is drained regardless of reseedCount's bit
// pattern (used by explicit full reseeds, e.g. after a detected fork);
// otherwise the loop stops after the first pool i whose bit is set in
// reseedCount, so pool i participates only when the low i bits of
// reseedCount are all zero, reproducing the Fortuna pool schedule (pool i
// drains once every 2^i reseeds).
func (g *Generator) reseedFromPools(full bool) {
	g.nextReseed = time.Now().Add(g.cfg.ReseedInterval)

	seed := make([]byte, 0, 4+16*4+len(g.pools)*sha256.Size)
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(g.nextReseed.UnixMilli()))
	seed = append(seed, tmp[:]...)

	for i := 0; i < 16; i++ {
		binary.BigEndian.PutUint32(tmp[:], g.cfg.Platform.Word())
		seed = append(seed, tmp[:]...)
	}

	var strength uint32
	priorReseedCount := g.reseedCount
	for i := 0; i < len(g.pools); i++ {
		digest := g.pools[i].drain()
		seed = append(seed, digest[:]...)

		strength += g.poolBits[i]
		g.poolBits[i] = 0

		if !full && priorReseedCount&(1<<uint(i)) != 0 {
			break
		}
	}

	if uint64(priorReseedCount)+1 >= uint64(1)<<uint(len(g.pools)) {
		g.growPools()
	}

	g.poolStrength -= strength
	if strength > g.workingStrength {
		g.workingStrength = strength
	}

	g.reseedCount++

	h := sha256.New()
	h.Write(g.key[:])
	h.Write(seed)
	copy(g.key[:], h.Sum(nil))

	block, err := aes.NewCipher(g.key[:])
	if err != nil {
		// Only possible error is a bad key size, which cannot happen for a
		// fixed 32-byte key.
		panic(err)
	}
	g.cipher = block
	g.counter.incr()
}
