// Package gameid generates hand identifiers: a UUIDv7 written as 26 characters
// of Crockford base32, so IDs sort by the time the hand started.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"
)

// Crockford's base32, lower case as TypeID writes it
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an ID
const Length = 26

// RandSource supplies the random bits of an ID
type RandSource interface {
	Intn(n int) int
}

// Generator makes IDs from a clock and a source of randomness
type Generator struct {
	randSource RandSource
	clock      quartz.Clock
}

// NewGenerator creates a generator. A nil randSource uses crypto/rand and a
// nil clock uses wall time.
func NewGenerator(randSource RandSource, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{randSource: randSource, clock: clock}
}

// Generate creates an ID from wall time and crypto/rand
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new ID
func (g *Generator) Generate() string {
	return encode(g.uuidV7())
}

// uuidV7 lays out 48 bits of Unix milliseconds, the version nibble, the
// variant bits and 74 random bits
func (g *Generator) uuidV7() [16]byte {
	var uuid [16]byte

	ms := g.clock.Now().UnixMilli()
	for i := range 6 {
		uuid[i] = byte(ms >> (40 - 8*i))
	}

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(g.randSource.Intn(256))
		}
	} else if _, err := rand.Read(uuid[6:]); err != nil {
		panic("gameid: reading random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80
	return uuid
}

// encode writes 128 bits as 26 base32 digits, padding with two leading
// zero bits so the first digit is at most 7
func encode(uuid [16]byte) string {
	var out [Length]byte
	for i := range out {
		var v byte
		for b := range 5 {
			v <<= 1
			bit := i*5 + b - 2
			if bit >= 0 && uuid[bit/8]&(0x80>>(bit%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out[:])
}

func decode(id string) ([16]byte, error) {
	var uuid [16]byte
	if err := Validate(id); err != nil {
		return uuid, err
	}
	for i := range Length {
		v := strings.IndexByte(alphabet, id[i])
		for b := range 5 {
			bit := i*5 + b - 2
			if bit >= 0 && v&(0x10>>b) != 0 {
				uuid[bit/8] |= 0x80 >> (bit % 8)
			}
		}
	}
	return uuid, nil
}

// Validate checks an ID is 26 base32 characters that fit in 128 bits
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("id must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("id first character must be 0-7, got %c", id[0])
	}
	for i := range len(id) {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %q at position %d", id[i], i)
		}
	}
	return nil
}

// Timestamp returns the creation time encoded in an ID, to the millisecond
func Timestamp(id string) (time.Time, error) {
	uuid, err := decode(id)
	if err != nil {
		return time.Time{}, err
	}
	var ms int64
	for i := range 6 {
		ms = ms<<8 | int64(uuid[i])
	}
	return time.UnixMilli(ms), nil
}
