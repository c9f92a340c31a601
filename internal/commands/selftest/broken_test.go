package selftest

// brokenEncoder drops the last byte of everything it encodes.
type brokenEncoder struct{}

func (b *brokenEncoder) Name() string   { return "Broken" }
func (b *brokenEncoder) String() string { return b.Name() }
func (b *brokenEncoder) Code() byte     { return 'B' }

func (b *brokenEncoder) Encode(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	return append([]byte(nil), data[:len(data)-1]...)
}

func (b *brokenEncoder) Decode(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

func (b *brokenEncoder) TestPatterns() [][]byte { return nil }

func (b *brokenEncoder) Ratio() float64 { return 1 }
