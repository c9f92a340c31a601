package util

import (
	"os"

	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// ErrMalformedInput is the exit code for input which could not be decoded (EX_DATAERR).
	ErrMalformedInput = 65
	ErrGeneric        = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object. Input rejected by a decoder exits with
// ErrMalformedInput, and any other kind of error with a generic error code - 99.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	if flagsError, ok := errors.Cause(err).(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
			return
		}

		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(int(flagsError.Type))
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	switch errors.Cause(err) {
	case enc.ErrInvalidLength, enc.ErrInvalidCharacter:
		log.Exit(ErrMalformedInput)
	default:
		log.Exit(ErrGeneric)
	}
}
