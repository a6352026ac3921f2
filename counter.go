package fortuna

import "encoding/binary"

// counter128 is the 128-bit AES-CTR counter, held as four 32-bit words in
// little-endian word order: word[0] increments first, carrying into
// word[1], and so on.
type counter128 [4]uint32

// incr adds 1 to c, carrying across words starting at word[0] and stopping
// at the first non-carrying word.
func (c *counter128) incr() {
	for i := range c {
		c[i]++
		if c[i] != 0 {
			return
		}
	}
}

// bytes renders c as 16 bytes in the same little-endian word order, for use
// as the AES block input.
func (c *counter128) bytes() [16]byte {
	var b [16]byte
	for i, w := range c {
		binary.LittleEndian.PutUint32(b[i*4:], w)
	}
	return b
}

// wordsFromBlock decodes a 16-byte AES output block into four 32-bit words,
// using the same little-endian word order as the counter.
func wordsFromBlock(block [16]byte) [4]uint32 {
	var words [4]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(block[i*4:])
	}
	return words
}
