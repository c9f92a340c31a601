package enc

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represends the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) []byte

	// Decode is the reverse proces of encoding
	Decode([]byte) ([]byte, error)

	// TestPatterns returns a list of valid encoded inputs which exercise the whole alphabet
	TestPatterns() [][]byte

	// Ratio is the (maximum) number of encoded bytes produced per source byte
	Ratio() float64
}
