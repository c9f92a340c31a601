package logging

import (
	"os"
	"strings"

	"github.com/bokysan/textcodec/internal/args"
	"github.com/bokysan/textcodec/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logrus logger from the general options. Log output never
// goes to stdout, which carries the encoded or decoded data.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}
	log.SetFormatter(newFormatter())
	log.SetReportCaller(args.General.LogReportCaller)

	if f := logFile(); f != nil {
		log.SetOutput(f)
	}

	log.Infof("Verbosity level: %v", VerbosityName())
}

func newFormatter() log.Formatter {
	if args.General.LogFormat == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}

	color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
	return &log.TextFormatter{
		ForceColors:   color == "yes" || color == "true" || color == "1",
		DisableColors: color == "no" || color == "false" || color == "0",
		FullTimestamp: args.General.LogFullTimestamp,
	}
}

// logFile opens the configured log file for appending. It returns nil when logging to stderr.
func logFile() *os.File {
	name := args.General.LogFile
	if name == nil || len(*name) == 0 || *name == util.StdStream {
		return nil
	}

	f, err := os.OpenFile(*name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	util.MustErrorNilOrExit(errors.WithStack(err))
	return f
}
