package enc

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	cb32    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	cb32Hex = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

	base32Pad = '='
)

// Base32Alphabet selects one of the two RFC 4648 alphabets.
type Base32Alphabet int

const (
	// Base32Std is the standard alphabet, A-Z followed by 2-7.
	Base32Std Base32Alphabet = iota
	// Base32Hex is the "extended hex" alphabet, 0-9 followed by A-V.
	Base32Hex
)

func (a Base32Alphabet) String() string {
	switch a {
	case Base32Std:
		return "std"
	case Base32Hex:
		return "hex"
	default:
		return fmt.Sprintf("Base32Alphabet(%d)", int(a))
	}
}

type base32Alphabet struct {
	encode  string
	reverse *reverseTable
}

var base32Alphabets = [...]base32Alphabet{
	Base32Std: {encode: cb32, reverse: newReverseTable(cb32)},
	Base32Hex: {encode: cb32Hex, reverse: newReverseTable(cb32Hex)},
}

func (a Base32Alphabet) tables() *base32Alphabet {
	if a < 0 || int(a) >= len(base32Alphabets) {
		panic("enc: unknown " + a.String())
	}
	return &base32Alphabets[a]
}

// Number of symbols emitted for a trailing group of 0-4 bytes, before padding.
var base32TailSymbols = [5]int{0, 2, 4, 5, 7}

// Number of bytes recovered from a trailing group of 0-7 symbols. -1 marks remainders that no
// encoder can produce.
var base32TailBytes = [8]int{0, -1, 1, -1, 2, 3, -1, 4}

// Base32EncodedLen returns the length of the encoding of n source bytes.
func Base32EncodedLen(n int, noPadding bool) int {
	if noPadding {
		return (n*8 + 4) / 5
	}
	return (n + 4) / 5 * 8
}

// Base32DecodedLen returns the maximum length of the data decoded from n encoded bytes. It is
// exact for unpadded input.
func Base32DecodedLen(n int) int {
	return n * 5 / 8
}

// Base32Encode encodes src into dst using the given alphabet and returns the number of bytes
// written, which is always Base32EncodedLen(len(src), noPadding). Unless noPadding is set the
// output is padded with '=' to a multiple of 8.
func Base32Encode(dst, src []byte, noPadding bool, alphabet Base32Alphabet) (int, error) {
	t := alphabet.tables()
	if len(dst) < Base32EncodedLen(len(src), noPadding) {
		return 0, ErrBufferTooSmall
	}

	di, si := 0, 0
	n := (len(src) / 5) * 5
	for si < n {
		encodeBase32Block(dst[di:di+8], src[si:si+5], t.encode)
		si += 5
		di += 8
	}

	remain := len(src) - si
	if remain == 0 {
		return di, nil
	}

	// Leftover bytes are zero-filled up to a full group; only the symbols covering real bits
	// are kept.
	var block [5]byte
	var out [8]byte
	copy(block[:], src[si:])
	encodeBase32Block(out[:], block[:], t.encode)
	di += copy(dst[di:], out[:base32TailSymbols[remain]])

	if !noPadding {
		for di%8 != 0 {
			dst[di] = base32Pad
			di++
		}
	}
	return di, nil
}

// encodeBase32Block expands 5 bytes into 8 symbols, most significant bits first.
func encodeBase32Block(dst, src []byte, alphabet string) {
	_ = dst[7]
	_ = src[4]

	// Combining two 32 bit loads allows the same code to be used for 32 and 64 bit platforms.
	hi := uint32(src[0])<<24 | uint32(src[1])<<16 | uint32(src[2])<<8 | uint32(src[3])
	lo := hi<<8 | uint32(src[4])

	dst[0] = alphabet[hi>>27&0x1F]
	dst[1] = alphabet[hi>>22&0x1F]
	dst[2] = alphabet[hi>>17&0x1F]
	dst[3] = alphabet[hi>>12&0x1F]
	dst[4] = alphabet[hi>>7&0x1F]
	dst[5] = alphabet[hi>>2&0x1F]
	dst[6] = alphabet[lo>>5&0x1F]
	dst[7] = alphabet[lo&0x1F]
}

// Base32Decode decodes src into dst and returns the number of bytes written. Trailing padding is
// optional, but when present the input must be a whole number of 8-byte blocks. dst may be the
// same slice as src.
//
// On failure the contents of dst are unspecified.
func Base32Decode(dst, src []byte, alphabet Base32Alphabet) (int, error) {
	t := alphabet.tables()

	n := len(src)
	if n > 0 && src[n-1] == base32Pad {
		if n < 8 || n%8 != 0 {
			return 0, ErrInvalidLength
		}
		pads := 0
		for n > 0 && src[n-1] == base32Pad {
			pads++
			n--
		}
		if pads > 6 {
			return 0, ErrInvalidLength
		}
	}

	remain := n % 8
	tail := base32TailBytes[remain]
	if tail < 0 {
		return 0, ErrInvalidLength
	}
	full := n - remain
	if len(dst) < full/8*5+tail {
		return 0, ErrBufferTooSmall
	}

	di, si := 0, 0
	for si < full {
		if !decodeBase32Block(dst[di:di+5], src[si:si+8], t.reverse) {
			return 0, ErrInvalidCharacter
		}
		si += 8
		di += 5
	}

	if remain == 0 {
		return di, nil
	}

	// The missing symbols of the last group decode as zero bits and the bytes they would
	// complete are dropped.
	var block [8]byte
	var out [5]byte
	for i := range block {
		block[i] = t.encode[0]
	}
	copy(block[:], src[si:n])
	if !decodeBase32Block(out[:], block[:], t.reverse) {
		return 0, ErrInvalidCharacter
	}
	di += copy(dst[di:], out[:tail])

	return di, nil
}

// decodeBase32Block packs 8 symbols into 5 bytes. It reports false, without touching dst, if
// any of the symbols is outside the alphabet.
func decodeBase32Block(dst, src []byte, t *reverseTable) bool {
	_ = dst[4]
	_ = src[7]

	s0, s1, s2, s3 := t[src[0]], t[src[1]], t[src[2]], t[src[3]]
	s4, s5, s6, s7 := t[src[4]], t[src[5]], t[src[6]], t[src[7]]
	if !(s0.valid && s1.valid && s2.valid && s3.valid && s4.valid && s5.valid && s6.valid && s7.valid) {
		return false
	}

	dst[0] = s0.value<<3 | s1.value>>2
	dst[1] = s1.value<<6 | s2.value<<1 | s3.value>>4
	dst[2] = s3.value<<4 | s4.value>>1
	dst[3] = s4.value<<7 | s5.value<<2 | s6.value>>3
	dst[4] = s6.value<<5 | s7.value
	return true
}

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters. The output is uppercase letters and digits only,
// apart from the '=' padding.
type Base32Encoder struct {
	Alphabet  Base32Alphabet
	NoPadding bool
}

func (b *Base32Encoder) Name() string {
	if b.Alphabet == Base32Hex {
		return "Base32Hex"
	}
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	if b.Alphabet == Base32Hex {
		return 'H'
	}
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) []byte {
	dst := make([]byte, Base32EncodedLen(len(data), b.NoPadding))
	n, err := Base32Encode(dst, data, b.NoPadding, b.Alphabet)
	if err != nil {
		// dst is sized by Base32EncodedLen, so this cannot happen.
		panic(err)
	}
	return dst[:n]
}

func (b *Base32Encoder) Decode(data []byte) ([]byte, error) {
	dst := make([]byte, Base32DecodedLen(len(data)))
	n, err := Base32Decode(dst, data, b.Alphabet)
	if err != nil {
		err = errors.Wrapf(err, "could not decode %v", b.Name())
		return nil, err
	}
	return dst[:n], nil
}

func (b *Base32Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte(b.Alphabet.tables().encode),
	}
}

func (b *Base32Encoder) Ratio() float64 {
	return 8.0 / 5.0
}
