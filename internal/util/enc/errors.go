package enc

import "github.com/pkg/errors"

var (
	// ErrInvalidLength is returned when the encoded input cannot be split into valid blocks: bad
	// padding, an impossible trailing remainder, or a lone trailing base85 digit.
	ErrInvalidLength = errors.New("invalid encoded length")

	// ErrInvalidCharacter is returned when the input holds a byte outside the alphabet.
	ErrInvalidCharacter = errors.New("invalid character in encoded input")

	// ErrBufferTooSmall is returned when dst cannot hold the result. Use the *EncodedLen and
	// *DecodedLen helpers to size it.
	ErrBufferTooSmall = errors.New("destination buffer too small")
)
