package enc

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

// cb85 holds the 85 printable characters from '!' (33) through 'u' (117).
const cb85 = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstu"

const (
	// base85Zero stands in for a whole all-zero 32-bit word.
	base85Zero = 'z'
	// base85MaxDigit pads a short trailing group while decoding, the equivalent of 'u'.
	base85MaxDigit = 84
)

var base85Reverse = newReverseTable(cb85)

// Base85EncodedLen returns the maximum length of the encoding of n source bytes. The actual
// length is shorter for every aligned zero word.
func Base85EncodedLen(n int) int {
	return (n + 3) / 4 * 5
}

// Base85DecodedLen returns the maximum length of the data decoded from n encoded bytes. Every
// 'z' yields four bytes, so the bound is 4*n.
func Base85DecodedLen(n int) int {
	return 4 * n
}

// Base85Encode encodes src into dst and returns the number of bytes written. Aligned all-zero
// words are written as a single 'z'; a trailing group of 1-3 bytes is written as remainder+1
// characters and never collapsed. dst must not overlap src.
func Base85Encode(dst, src []byte) (int, error) {
	di, si := 0, 0
	n := (len(src) / 4) * 4
	for si < n {
		v := binary.BigEndian.Uint32(src[si:])
		si += 4

		if v == 0 {
			if di >= len(dst) {
				return 0, ErrBufferTooSmall
			}
			dst[di] = base85Zero
			di++
			continue
		}

		if len(dst)-di < 5 {
			return 0, ErrBufferTooSmall
		}
		encodeBase85Word(dst[di:di+5], v)
		di += 5
	}

	remain := len(src) - si
	if remain == 0 {
		return di, nil
	}
	if len(dst)-di < remain+1 {
		return 0, ErrBufferTooSmall
	}

	var block [4]byte
	var out [5]byte
	copy(block[:], src[si:])
	encodeBase85Word(out[:], binary.BigEndian.Uint32(block[:]))
	di += copy(dst[di:], out[:remain+1])

	return di, nil
}

// encodeBase85Word writes the 5 base-85 digits of v, most significant first.
func encodeBase85Word(dst []byte, v uint32) {
	_ = dst[4]
	dst[0] = cb85[v/(85*85*85*85)] // always < 85, no modulo needed
	dst[1] = cb85[v/(85*85*85)%85]
	dst[2] = cb85[v/(85*85)%85]
	dst[3] = cb85[v/85%85]
	dst[4] = cb85[v%85]
}

// Base85Decode decodes src into dst and returns the number of bytes written. Spaces and control
// characters are skipped, and 'z' expands to four zero bytes, discarding any digits of an
// unfinished group.
//
// dst may be the same slice as src as long as src holds no 'z', since every other group decodes
// to fewer bytes than it occupies. On failure the contents of dst are unspecified.
func Base85Decode(dst, src []byte) (int, error) {
	var acc uint32
	pending, di := 0, 0

	for _, c := range src {
		if c <= ' ' {
			continue
		}

		if c == base85Zero {
			if len(dst)-di < 4 {
				return 0, ErrBufferTooSmall
			}
			binary.BigEndian.PutUint32(dst[di:], 0)
			di += 4
			acc, pending = 0, 0
			continue
		}

		d, ok := base85Reverse.lookup(c)
		if !ok {
			return 0, ErrInvalidCharacter
		}
		acc = acc*85 + uint32(d)
		pending++

		if pending == 5 {
			if len(dst)-di < 4 {
				return 0, ErrBufferTooSmall
			}
			binary.BigEndian.PutUint32(dst[di:], acc)
			di += 4
			acc, pending = 0, 0
		}
	}

	switch pending {
	case 0:
		return di, nil
	case 1:
		// A single digit carries less than one byte.
		return 0, ErrInvalidLength
	}

	for i := pending; i < 5; i++ {
		acc = acc*85 + base85MaxDigit
	}
	if len(dst)-di < pending-1 {
		return 0, ErrBufferTooSmall
	}
	var block [4]byte
	binary.BigEndian.PutUint32(block[:], acc)
	di += copy(dst[di:], block[:pending-1])

	return di, nil
}

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters, or a zero word to a single 'z'.
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) []byte {
	dst := make([]byte, Base85EncodedLen(len(data)))
	n, err := Base85Encode(dst, data)
	if err != nil {
		// dst is sized by Base85EncodedLen, so this cannot happen.
		panic(err)
	}
	return dst[:n]
}

func (b *Base85Encoder) Decode(data []byte) ([]byte, error) {
	dst := make([]byte, Base85DecodedLen(len(data)))
	n, err := Base85Decode(dst, data)
	if err != nil {
		err = errors.Wrapf(err, "could not decode %v", b.Name())
		return nil, err
	}
	return dst[:n], nil
}

func (b *Base85Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte(cb85),
	}
}

func (b *Base85Encoder) Ratio() float64 {
	return 1.25
}
