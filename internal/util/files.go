package util

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StdStream is the file name which stands for stdin or stdout.
const StdStream = "-"

// ReadInput reads the whole named file, or stdin if the name is empty or StdStream.
func ReadInput(name string) ([]byte, error) {
	if name == "" || name == StdStream {
		data, err := ioutil.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "could not read stdin")
	}

	data, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %v", name)
	}
	log.Debugf("Read %d bytes from %v", len(data), name)
	return data, nil
}

// WriteOutput writes data to the named file, or stdout if the name is empty or StdStream. An
// existing file is truncated.
func WriteOutput(name string, data []byte) error {
	if name == "" || name == StdStream {
		_, err := os.Stdout.Write(data)
		return errors.Wrap(err, "could not write to stdout")
	}

	if err := ioutil.WriteFile(name, data, 0644); err != nil {
		return errors.Wrapf(err, "could not write %v", name)
	}
	log.Debugf("Wrote %d bytes to %v", len(data), name)
	return nil
}
