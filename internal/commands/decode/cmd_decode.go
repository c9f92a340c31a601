package decode

import (
	"bytes"

	"github.com/bokysan/textcodec/internal/args"
	"github.com/bokysan/textcodec/internal/logging"
	"github.com/bokysan/textcodec/internal/util"
	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
)

type Command struct {
	args.Codec `yaml:",inline"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	encoder, err := c.Encoder()
	if err != nil {
		return err
	}

	data, err := util.ReadInput(c.Input)
	if err != nil {
		return err
	}

	// Base85 skips whitespace on its own; base32 rejects it, so line breaks from wrapped input
	// are removed first.
	if _, ok := encoder.(*enc.Base32Encoder); ok {
		data = StripSpace(data)
	}

	decoded, err := encoder.Decode(data)
	if err != nil {
		return err
	}
	log.Debugf("Decoded %d characters into %d bytes using %v", len(data), len(decoded), encoder)
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Decoded data:\n%s", spew.Sdump(decoded))
	}

	return util.WriteOutput(c.Output, decoded)
}

// StripSpace removes ASCII spaces, tabs and line breaks. Any other byte, including Unicode
// spaces, is left for the decoder to reject.
func StripSpace(data []byte) []byte {
	return bytes.Join(bytes.FieldsFunc(data, isASCIISpace), nil)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
