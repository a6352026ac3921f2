package fortuna

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPoolDrainResetsAccumulator(t *testing.T) {
	p := newHashPool()
	p.write([]byte("some data"))
	first := p.drain()

	p.write([]byte("some data"))
	second := p.drain()
	assert.Equal(t, first, second)

	empty := sha256.Sum256(nil)
	p2 := newHashPool()
	emptyDrain := p2.drain()
	assert.Equal(t, empty, emptyDrain)
}

func TestGrowPoolsAppendsMatchedEntries(t *testing.T) {
	g := newTestGenerator(t)
	before := len(g.pools)
	g.growPools()
	assert.Equal(t, before+1, len(g.pools))
	assert.Equal(t, len(g.pools), len(g.poolBits))
	assert.Equal(t, uint32(0), g.poolBits[len(g.poolBits)-1])
}

func TestNextSourceIDIsDenseAndStable(t *testing.T) {
	g := newTestGenerator(t)
	a := g.nextSourceID("alpha")
	b := g.nextSourceID("beta")
	aAgain := g.nextSourceID("alpha")
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, a, aAgain)
}

func TestNextRobinRotatesAndWraps(t *testing.T) {
	g := newTestGenerator(t)
	g.growPools()
	g.growPools()
	assert.Equal(t, 3, len(g.pools))

	seen := []int{g.nextRobin("s"), g.nextRobin("s"), g.nextRobin("s"), g.nextRobin("s")}
	assert.Equal(t, []int{0, 1, 2, 0}, seen)
}

func TestEstimateWordsBitsCapsPerElement(t *testing.T) {
	assert.Equal(t, uint32(0), estimateWordsBits([]uint32{0}))
	assert.Equal(t, uint32(1), estimateWordsBits([]uint32{1}))
	assert.Equal(t, uint32(32), estimateWordsBits([]uint32{0xFFFFFFFF}))
	assert.Equal(t, uint32(33), estimateWordsBits([]uint32{0xFFFFFFFF, 1}))
}
