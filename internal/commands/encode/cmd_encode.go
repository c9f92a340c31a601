package encode

import (
	"bytes"

	"github.com/bokysan/textcodec/internal/args"
	"github.com/bokysan/textcodec/internal/logging"
	"github.com/bokysan/textcodec/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Command struct {
	args.Codec `yaml:",inline"`
	Wrap       int `yaml:"wrap" short:"w" long:"wrap" env:"WRAP" description:"Wrap encoded lines after this many characters. 0 disables wrapping." default:"0"`
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

	encoded := encoder.Encode(data)
	log.Debugf("Encoded %d bytes into %d characters using %v", len(data), len(encoded), encoder)

	if c.Wrap < 0 {
		return errors.Errorf("invalid wrap width: %d", c.Wrap)
	}
	return util.WriteOutput(c.Output, Wrap(encoded, c.Wrap))
}

// Wrap splits encoded into lines of at most width characters, each terminated by a newline. A
// width of 0 produces a single line.
func Wrap(encoded []byte, width int) []byte {
	if width <= 0 || len(encoded) <= width {
		return append(encoded, '\n')
	}

	out := bytes.NewBuffer(make([]byte, 0, len(encoded)+len(encoded)/width+1))
	for len(encoded) > 0 {
		n := width
		if n > len(encoded) {
			n = len(encoded)
		}
		out.Write(encoded[:n])
		out.WriteByte('\n')
		encoded = encoded[n:]
	}
	return out.Bytes()
}
