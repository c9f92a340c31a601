package enc

// symbol is a single entry of a reverse lookup table. Bytes outside the alphabet have valid set
// to false instead of carrying a reserved marker value.
type symbol struct {
	value byte
	valid bool
}

// reverseTable maps every possible input byte to its digit value.
type reverseTable [256]symbol

func newReverseTable(alphabet string) *reverseTable {
	t := &reverseTable{}
	for i := 0; i < len(alphabet); i++ {
		if t[alphabet[i]].valid {
			panic("enc: duplicate symbol in alphabet " + alphabet)
		}
		t[alphabet[i]] = symbol{value: byte(i), valid: true}
	}
	return t
}

// lookup returns the digit value for c and whether c belongs to the alphabet.
func (t *reverseTable) lookup(c byte) (byte, bool) {
	s := t[c]
	return s.value, s.valid
}
