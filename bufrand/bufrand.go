// Package bufrand generates random booleans by drawing 64 random bits at
// a time from a Source and handing them out one by one, and uses them to
// randomize the letter case of text.
//
// It was created as part of randcase, but is standalone
// and may be used on its own.
package bufrand

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// uninitialized is the value of shiftCounter before the first refill. Any
// value above 64 forces a refill, so the zero bitBuf is never read.
const uninitialized = 0xff

// Source is a source of random 64-bit values. Any math/rand.Source64
// satisfies it.
type Source interface {
	Uint64() uint64
}

// BufRand generates random booleans using a buffer of random bits.
//
// A BufRand owns its Source. It is not safe for concurrent use: callers
// sharing one between goroutines have to synchronize access themselves.
type BufRand struct {
	// bits not yet consumed, next one in the least significant position
	bitBuf uint64
	// number of bits already read from bitBuf. bitBuf is not simply
	// compared to 0, which would bias results toward false
	shiftCounter uint8
	src          Source

	upper cases.Caser
	lower cases.Caser
}

// New returns a BufRand drawing its bits from src.
func New(src Source) *BufRand {
	if src == nil {
		panic("bufrand: nil Source")
	}
	return &BufRand{
		bitBuf:       0,
		shiftCounter: uninitialized,
		src:          src,
		upper:        cases.Upper(language.Und),
		lower:        cases.Lower(language.Und),
	}
}

// NextBool returns a random boolean. Bits of each value drawn from the
// source are used least significant first, a 0 bit giving true and a 1 bit
// giving false. A new value is drawn every 64 calls.
func (b *BufRand) NextBool() bool {
	if b.shiftCounter >= 64 {
		b.bitBuf = b.src.Uint64()
		b.shiftCounter = 0
	}
	out := b.bitBuf&1 == 0
	b.bitBuf >>= 1
	b.shiftCounter++
	return out
}

// RandCharCase returns the full uppercase mapping of r if the next boolean
// is true, and its full lowercase mapping otherwise. The result may hold
// more than one rune: 'ß' in uppercase is "SS".
func (b *BufRand) RandCharCase(r rune) string {
	if b.NextBool() {
		return b.upper.String(string(r))
	}
	return b.lower.String(string(r))
}

// RandStringCase randomizes the case of every rune of s, drawing one
// boolean per rune in order. s is read as UTF-8: each invalid byte is
// replaced by utf8.RuneError ("\uFFFD") in the result.
func (b *BufRand) RandStringCase(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, b.RandCharCase(r)...)
	}
	return string(out)
}

// Source returns the source of b, so it can be used directly alongside
// the buffered booleans.
func (b *BufRand) Source() Source { return b.src }

// SetSource replaces the source of b. Bits already buffered are still
// handed out before the new source is used.
func (b *BufRand) SetSource(src Source) {
	if src == nil {
		panic("bufrand: nil Source")
	}
	b.src = src
}

// Uint64 returns a raw value from the source, leaving the bit buffer
// untouched.
func (b *BufRand) Uint64() uint64 { return b.src.Uint64() }

// Uint32 returns the high 32 bits of a raw value from the source, leaving
// the bit buffer untouched.
func (b *BufRand) Uint32() uint32 { return uint32(b.src.Uint64() >> 32) }
