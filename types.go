package fortuna

// EntropyData is the tagged variant accepted by AddEntropy. It models the
// three shapes of submission the source format distinguishes: a single
// 32-bit word, an ordered sequence of 32-bit words, and a text string.
// Construct one with Word, Words, or Text; the zero value is invalid.
type EntropyData interface {
	entropyData()
}

// Word wraps a single 32-bit integer submission.
type Word uint32

func (Word) entropyData() {}

// Words wraps an ordered sequence of 32-bit integer submissions.
type Words []uint32

func (Words) entropyData() {}

// Text wraps a text string submission; its raw UTF-8 bytes are folded into
// the pool as the character-code stream.
type Text string

func (Text) entropyData() {}
