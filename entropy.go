package fortuna

import (
	"encoding/binary"
	"time"
)

// AddEntropy routes an entropy submission to one pool, chosen by a
// source-specific round-robin index, and updates the pool's and the
// generator's entropy accounting.
//
// estimatedBits may be nil for Words and Text submissions, in which case it
// is auto-estimated (see estimateWordsBits and the one-bit-per-character
// rule below); callers with high-entropy strings SHOULD pass an explicit
// estimate rather than rely on the coarse per-character default. A nil
// estimate for a Word submission is an error, since there is no
// auto-estimation rule for single integers.
//
// sourceTag defaults to "user" when empty.
func (g *Generator) AddEntropy(data EntropyData, estimatedBits *uint32, sourceTag string) error {
	if sourceTag == "" {
		sourceTag = "user"
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextSourceID(sourceTag)
	seq := g.eventSeq
	g.eventSeq++
	t := uint32(time.Now().UnixMilli())
	r := g.cfg.Platform.Word()

	bits, header, payload, err := buildSubmission(data, estimatedBits, uint32(id), seq, t, r)
	if err != nil {
		return err
	}

	wasFull := g.progressLocked(nil) == 1.0

	robin := g.nextRobin(sourceTag)
	pool := &g.pools[robin]
	pool.write(header)
	pool.write(payload)

	g.poolBits[robin] += bits
	g.poolStrength += bits

	isFull := g.progressLocked(nil) == 1.0
	if !wasFull && isFull {
		g.listeners.fire(eventSeeded, maxUint32(g.workingStrength, g.poolStrength))
	}
	if !wasFull {
		g.listeners.fire(eventProgress, g.progressLocked(nil))
	}
	return nil
}

// buildSubmission serializes the header and payload bytes folded into a
// pool for one entropy submission, one layout per EntropyData variant.
func buildSubmission(data EntropyData, estimatedBits *uint32, id uint32, seq uint64, t, r uint32) (bits uint32, header, payload []byte, err error) {
	switch v := data.(type) {
	case Word:
		if estimatedBits == nil {
			return 0, nil, nil, ErrInvalidInput
		}
		bits = *estimatedBits
		header = wordsToBytes([]uint32{id, uint32(seq), 1, bits, t, r, 1, uint32(v)})
		return bits, header, nil, nil

	case Words:
		if estimatedBits != nil {
			bits = *estimatedBits
		} else {
			bits = estimateWordsBits(v)
		}
		header = wordsToBytes([]uint32{id, uint32(seq), 2, bits, t, r, uint32(len(v))})
		payload = wordsToBytes(v)
		return bits, header, payload, nil

	case Text:
		if estimatedBits != nil {
			bits = *estimatedBits
		} else {
			bits = uint32(len(v))
		}
		header = wordsToBytes([]uint32{id, uint32(seq), 3, bits, t, r, uint32(len(v))})
		payload = []byte(v)
		return bits, header, payload, nil

	default:
		return 0, nil, nil, ErrInvalidInput
	}
}

func wordsToBytes(words []uint32) []byte {
	b := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(b[i*4:], w)
	}
	return b
}

func maxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
