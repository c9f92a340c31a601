package args

import (
	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/pkg/errors"
)

// Codec holds the options shared by the encode and decode commands. The yaml tags name the keys
// accepted under the command's section of the configuration file.
type Codec struct {
	Encoding  string `yaml:"encoding"   short:"e" long:"encoding"   env:"ENCODING"   description:"Encoding to use" choice:"base32" choice:"base32hex" choice:"base85" default:"base32"`
	NoPadding bool   `yaml:"no-padding"           long:"no-padding" env:"NO_PADDING" description:"Do not pad base32 output with '='"`
	Input     string `yaml:"input"      short:"i" long:"input"      env:"INPUT"      description:"Input file, '-' for stdin" default:"-"`
	Output    string `yaml:"output"     short:"o" long:"output"     env:"OUTPUT"     description:"Output file, '-' for stdout" default:"-"`
}

// Encoder returns the encoder selected by these options.
func (c *Codec) Encoder() (enc.Encoder, error) {
	e, err := enc.Lookup(c.Encoding)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if b32, ok := e.(*enc.Base32Encoder); ok {
		b32.NoPadding = c.NoPadding
	}
	return e, nil
}
