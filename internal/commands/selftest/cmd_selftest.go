package selftest

import (
	"bytes"
	"math/rand"

	"github.com/bokysan/textcodec/internal/logging"
	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command round-trips the test patterns and random payloads through every selected encoder and
// reports all mismatches at once.
type Command struct {
	Encodings []string `yaml:"encodings"  short:"e" long:"encoding"   env:"ENCODINGS" env-delim:"," description:"Encoding to test, may be repeated. Defaults to all encodings."`
	MaxLength int      `yaml:"max-length"           long:"max-length" env:"MAX_LENGTH"              description:"Round-trip random payloads of every length up to this one" default:"64"`
	Seed      int64    `yaml:"seed"                 long:"seed"       env:"SEED"                    description:"Seed for the random payloads" default:"1"`
}

func NewCommand() *Command {
	return &Command{
		MaxLength: 64,
		Seed:      1,
	}
}

func (c *Command) encoders() ([]enc.Encoder, error) {
	if len(c.Encodings) == 0 {
		return enc.Encoders(), nil
	}
	res := make([]enc.Encoder, 0, len(c.Encodings))
	for _, name := range c.Encodings {
		e, err := enc.Lookup(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		res = append(res, e)
	}
	return res, nil
}

// Run executes the checks and returns every failure found.
func (c *Command) Run() error {
	encoders, err := c.encoders()
	if err != nil {
		return err
	}

	var errs error
	gen := rand.New(rand.NewSource(c.Seed))

	for _, e := range encoders {
		failures := 0
		for _, pattern := range e.TestPatterns() {
			if err := checkPattern(e, pattern); err != nil {
				errs = multierror.Append(errs, err)
				failures++
			}
		}

		for l := 0; l <= c.MaxLength; l++ {
			data := make([]byte, l)
			gen.Read(data)
			if err := checkRoundTrip(e, data); err != nil {
				errs = multierror.Append(errs, err)
				failures++
			}
		}

		if failures > 0 {
			log.Errorf("[%v] %d checks failed", e, failures)
		} else {
			log.Infof("[%v] All checks passed", e)
		}
	}

	return errs
}

func checkPattern(e enc.Encoder, pattern []byte) error {
	decoded, err := e.Decode(pattern)
	if err != nil {
		return errors.Wrapf(err, "%v: could not decode test pattern %q", e, pattern)
	}
	if encoded := e.Encode(decoded); !bytes.Equal(encoded, pattern) {
		return errors.Errorf("%v: test pattern %q re-encoded as %q", e, pattern, encoded)
	}
	return nil
}

func checkRoundTrip(e enc.Encoder, data []byte) error {
	encoded := e.Encode(data)
	decoded, err := e.Decode(encoded)
	if err != nil {
		return errors.Wrapf(err, "%v: could not decode %q", e, encoded)
	}
	if !bytes.Equal(decoded, data) {
		return errors.Errorf("%v: %d byte payload did not survive the round trip", e, len(data))
	}
	return nil
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()
	return c.Run()
}
