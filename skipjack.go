// Package skipjack implements the Skipjack block cipher, the 64-bit unbalanced Feistel cipher with an 80-bit key
// designed by the NSA and best known for its use in the Clipper chip.
//
// The implementation is a literal rendering of the [NIST specification]: the F table is transcribed verbatim, the
// 10-byte key is cycled directly rather than expanded into a key schedule, and the 32 rounds are stepped one rule at a
// time, so every intermediate value is traceable to the published description. There is no assembly and no hardware
// dispatch.
//
// Skipjack is not recommended for modern cryptographic use: its 80-bit key is within reach of brute force and its
// 64-bit block makes codebook collisions practical. To discourage use, this package intentionally provides no mode of
// operation beyond the single-block codebook (ECB) transform.
//
// [NIST specification]: https://csrc.nist.gov/CSRC/media/Projects/Cryptographic-Algorithm-Validation-Program/documents/skipjack/skipjack.pdf
package skipjack

import (
	"crypto/cipher"
	"encoding/binary"
	"strconv"
)

const (
	// BlockSize is the size of a Skipjack block in bytes.
	BlockSize = 8

	// KeySize is the size of a Skipjack key in bytes.
	KeySize = 10
)

// KeySizeError is returned by New when the given key is not exactly KeySize bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "skipjack: invalid key size " + strconv.Itoa(int(k)) + ", must be 10 bytes"
}

// A Cipher is an instance of Skipjack using a particular key. It holds no state beyond the key itself and is safe for
// concurrent use.
type Cipher struct {
	key [KeySize]byte
}

var _ cipher.Block = (*Cipher)(nil)

// New creates and returns a new [Cipher]. The key must be exactly 10 bytes long.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	c := new(Cipher)
	copy(c.key[:], key)
	return c, nil
}

// BlockSize returns the Skipjack block size, 8 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the 8-byte block in src and writes the result to dst. Dst and src must overlap entirely or not at
// all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("skipjack: input not full block")
	}
	if len(dst) < BlockSize {
		panic("skipjack: output not full block")
	}

	w := blockToWords(src)

	// 32 rounds in four groups of eight, alternating stepping rules: A for counters 1-8, B for 9-16, A for 17-24, B
	// for 25-32.
	k := uint16(1)
	for ; k <= 8; k++ {
		ruleA(&w, k, &c.key)
	}
	for ; k <= 16; k++ {
		ruleB(&w, k, &c.key)
	}
	for ; k <= 24; k++ {
		ruleA(&w, k, &c.key)
	}
	for ; k <= 32; k++ {
		ruleB(&w, k, &c.key)
	}

	wordsToBlock(dst, w)
}

// Decrypt decrypts the 8-byte block in src and writes the result to dst. Dst and src must overlap entirely or not at
// all.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("skipjack: input not full block")
	}
	if len(dst) < BlockSize {
		panic("skipjack: output not full block")
	}

	w := blockToWords(src)

	// The exact mirror of encryption: counters 32 down to 1, each stepping rule replaced by its inverse.
	k := uint16(32)
	for ; k >= 25; k-- {
		ruleBInv(&w, k, &c.key)
	}
	for ; k >= 17; k-- {
		ruleAInv(&w, k, &c.key)
	}
	for ; k >= 9; k-- {
		ruleBInv(&w, k, &c.key)
	}
	for ; k >= 1; k-- {
		ruleAInv(&w, k, &c.key)
	}

	wordsToBlock(dst, w)
}

// blockToWords splits an 8-byte block into four 16-bit words, big-endian, with w1 the high word.
func blockToWords(src []byte) [4]uint16 {
	return [4]uint16{
		binary.BigEndian.Uint16(src[0:2]),
		binary.BigEndian.Uint16(src[2:4]),
		binary.BigEndian.Uint16(src[4:6]),
		binary.BigEndian.Uint16(src[6:8]),
	}
}

// wordsToBlock merges four 16-bit words back into an 8-byte block, using the same convention as blockToWords.
func wordsToBlock(dst []byte, w [4]uint16) {
	binary.BigEndian.PutUint16(dst[0:2], w[0])
	binary.BigEndian.PutUint16(dst[2:4], w[1])
	binary.BigEndian.PutUint16(dst[4:6], w[2])
	binary.BigEndian.PutUint16(dst[6:8], w[3])
}
