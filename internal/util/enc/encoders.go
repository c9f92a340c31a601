package enc

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownEncoder is returned by Lookup when no encoder matches the requested name or code.
var ErrUnknownEncoder = errors.New("unknown encoder")

// Encoders returns a fresh instance of every supported encoder, padded variants first.
func Encoders() []Encoder {
	return []Encoder{
		&Base32Encoder{Alphabet: Base32Std},
		&Base32Encoder{Alphabet: Base32Hex},
		&Base85Encoder{},
	}
}

// Lookup finds an encoder by its name (e.g. "base32hex") or its one-letter code, ignoring case.
func Lookup(name string) (Encoder, error) {
	name = strings.TrimSpace(name)
	for _, e := range Encoders() {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
		if len(name) == 1 && strings.EqualFold(string(e.Code()), name) {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownEncoder, "%q", name)
}
