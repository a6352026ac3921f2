package fortuna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorRejectsParanoiaOutOfRange(t *testing.T) {
	_, err := NewGenerator(WithoutSelfTest(), WithDefaultParanoia(11))
	assert.ErrorIs(t, err, ErrParanoiaOutOfRange)
}

func TestSetDefaultParanoiaRejectsOutOfRange(t *testing.T) {
	g := newTestGenerator(t)
	assert.ErrorIs(t, g.SetDefaultParanoia(11), ErrParanoiaOutOfRange)
}

func TestDefaultIsASingleton(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

// Cold start: no entropy has ever been added, and the default paranoia
// level demands far more than zero bits, so output must be refused.
func TestColdStartRejectsOutput(t *testing.T) {
	g := newTestGenerator(t, WithDefaultParanoia(6))

	_, err := g.RandomWords(4, nil)
	assert.ErrorIs(t, err, ErrNotReady)

	progress, err := g.GetProgress(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, progress)
}

// Paranoia level 0 requires zero bits, so a generator is "ready" before any
// entropy has ever been submitted; RandomWords must still produce output
// rather than dereferencing an uninitialized cipher.
func TestSufficientEntropyAtParanoiaZero(t *testing.T) {
	g := newTestGenerator(t)

	words, err := g.RandomWords(4, nil)
	require.NoError(t, err)
	assert.Len(t, words, 4)

	bits := uint32(128)
	require.NoError(t, g.AddEntropy(Text("some seed material"), &bits, "test"))

	words, err = g.RandomWords(4, nil)
	require.NoError(t, err)
	assert.Len(t, words, 4)
}

// Four submissions from the same source tag must visit pools 0..3 in order
// and wrap back to 0, once the pool bank has grown to four pools.
func TestRoundRobinRouting(t *testing.T) {
	g := newTestGenerator(t)
	for len(g.pools) < 4 {
		g.reseedFromPools(true)
	}
	require.Len(t, g.pools, 4)

	one := uint32(1)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEntropy(Word(1), &one, "sensor"))
	}

	assert.Equal(t, 0, g.robins["sensor"])
	for i := 0; i < 4; i++ {
		assert.Equal(t, uint32(1), g.poolBits[i], "pool %d", i)
	}
}

// After sixteen reseeds the doubling growth schedule must have appended
// pools past the initial one, reaching at least five.
func TestPoolBankGrowsWithReseedSchedule(t *testing.T) {
	g := newTestGenerator(t)
	for i := 0; i < 16; i++ {
		g.reseedFromPools(true)
	}
	assert.GreaterOrEqual(t, len(g.pools), 5)
}

// Drawing output must rekey the cipher, so state compromised after the call
// cannot be used to recover the words already returned.
func TestGateChangesKeyAfterOutput(t *testing.T) {
	g := newTestGenerator(t)
	bits := uint32(256)
	require.NoError(t, g.AddEntropy(Text("plenty of seed material for this run"), &bits, "test"))

	keyBefore := g.key
	_, err := g.RandomWords(4, nil)
	require.NoError(t, err)
	assert.NotEqual(t, keyBefore, g.key)

	keyBefore = g.key
	_, err = g.RandomWords(0, nil)
	require.NoError(t, err)
	assert.NotEqual(t, keyBefore, g.key)
}

// Once enough entropy has been submitted to satisfy a paranoia level, the
// "seeded" event must fire exactly once, not again on subsequent submissions.
func TestSeededEventFiresOnce(t *testing.T) {
	g := newTestGenerator(t, WithDefaultParanoia(6))
	fired := 0
	g.AddEventListener("seeded", func(arg interface{}) { fired++ })

	bits := uint32(300)
	require.NoError(t, g.AddEntropy(Text("abundant seed material for paranoia six"), &bits, "test"))
	assert.Equal(t, 1, fired)

	more := uint32(50)
	require.NoError(t, g.AddEntropy(Text("more"), &more, "test"))
	assert.Equal(t, 1, fired)
}

// The pool bank and its bit-count side table always have matching,
// nonzero length.
func TestInvariantPoolsAndPoolBitsStayInSync(t *testing.T) {
	g := newTestGenerator(t)
	assert.GreaterOrEqual(t, len(g.pools), 1)
	assert.Equal(t, len(g.pools), len(g.poolBits))

	for i := 0; i < 20; i++ {
		g.reseedFromPools(true)
		assert.Equal(t, len(g.pools), len(g.poolBits))
	}
}

// poolStrength always equals the sum of the per-pool bit counters.
func TestInvariantPoolStrengthMatchesSum(t *testing.T) {
	g := newTestGenerator(t)
	bits := uint32(7)
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddEntropy(Word(uint32(i)), &bits, "src"))
	}
	var sum uint32
	for _, b := range g.poolBits {
		sum += b
	}
	assert.Equal(t, g.poolStrength, sum)
}

// workingStrength never decreases across reseeds.
func TestInvariantWorkingStrengthNonDecreasing(t *testing.T) {
	g := newTestGenerator(t)
	prev := g.workingStrength
	for i := 0; i < 10; i++ {
		bits := uint32(10)
		require.NoError(t, g.AddEntropy(Word(uint32(i)), &bits, "src"))
		g.reseedFromPools(true)
		assert.GreaterOrEqual(t, g.workingStrength, prev)
		prev = g.workingStrength
	}
}

// A full reseed drains every pool's bit counter to zero.
func TestInvariantFullReseedDrainsAllPools(t *testing.T) {
	g := newTestGenerator(t)
	for len(g.pools) < 3 {
		g.reseedFromPools(true)
	}
	bits := uint32(10)
	for i := range g.pools {
		require.NoError(t, g.AddEntropy(Word(uint32(i)), &bits, "src"))
	}
	g.reseedFromPools(true)
	for i, b := range g.poolBits {
		assert.Equal(t, uint32(0), b, "pool %d", i)
	}
}

// The round-robin index for any source tag always stays within bounds,
// even immediately after the pool bank shrinks relative to where it points
// (it can't shrink, but growth must not leave a stale index out of range).
func TestInvariantRobinStaysInRange(t *testing.T) {
	g := newTestGenerator(t)
	one := uint32(1)
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEntropy(Word(1), &one, "src"))
		assert.Less(t, g.robins["src"], len(g.pools))
		if i%7 == 0 {
			g.reseedFromPools(true)
		}
	}
}

// eventSeq strictly increases across submissions.
func TestInvariantEventSeqStrictlyIncreases(t *testing.T) {
	g := newTestGenerator(t)
	one := uint32(1)
	last := g.eventSeq
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddEntropy(Word(1), &one, "src"))
		assert.Greater(t, g.eventSeq, last)
		last = g.eventSeq
	}
}

// Starting collectors twice is the same as starting them once.
func TestStartCollectorsIsIdempotent(t *testing.T) {
	g := newTestGenerator(t)
	require.NoError(t, g.StartCollectors())
	strengthAfterFirst := g.poolStrength
	require.NoError(t, g.StartCollectors())
	assert.Equal(t, strengthAfterFirst, g.poolStrength)
}

// Stopping collectors that were never started is a no-op.
func TestStopCollectorsWhenNotStartedIsNoop(t *testing.T) {
	g := newTestGenerator(t)
	assert.False(t, g.CollectorsStarted())
	g.StopCollectors()
	assert.False(t, g.CollectorsStarted())
}

// Removing a listener restores the prior listener set.
func TestRemoveEventListenerRestoresListenerSet(t *testing.T) {
	g := newTestGenerator(t)
	calls := 0
	h := g.AddEventListener("progress", func(arg interface{}) { calls++ })
	g.RemoveEventListener(h)

	bits := uint32(0)
	require.NoError(t, g.AddEntropy(Text("x"), &bits, "src"))
	assert.Equal(t, 0, calls)
}

// RandomWords(0) returns an empty slice but still gates the cipher.
func TestRandomWordsZeroStillGates(t *testing.T) {
	g := newTestGenerator(t)
	keyBefore := g.key
	words, err := g.RandomWords(0, nil)
	require.NoError(t, err)
	assert.Empty(t, words)
	assert.NotEqual(t, keyBefore, g.key)
}

// A draw larger than one burst must still return exactly the words
// requested, gating at least once partway through the call.
func TestRandomWordsAboveBurstSizeSucceeds(t *testing.T) {
	g := newTestGenerator(t)
	n := uint(maxWordsPerBurst + 8)
	words, err := g.RandomWords(n, nil)
	require.NoError(t, err)
	assert.Len(t, words, int(n))
}

// isReady is non-decreasing in workingStrength and non-increasing in
// paranoia level.
func TestIsReadyMonotonicity(t *testing.T) {
	g := newTestGenerator(t)
	bits := uint32(100)
	require.NoError(t, g.AddEntropy(Text("some material"), &bits, "src"))
	g.reseedFromPools(true)

	low := ptrUint(0)
	high := ptrUint(10)
	stateLow, err := g.IsReady(low)
	require.NoError(t, err)
	stateHigh, err := g.IsReady(high)
	require.NoError(t, err)
	assert.True(t, stateLow&Ready != 0)
	assert.True(t, stateHigh&Ready == 0)
}
