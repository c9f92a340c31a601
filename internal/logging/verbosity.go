package logging

import (
	log "github.com/sirupsen/logrus"
)

var verbosityNames = map[log.Level]string{
	log.PanicLevel: "PANIC",
	log.FatalLevel: "FATAL",
	log.ErrorLevel: "ERROR",
	log.WarnLevel:  "WARN",
	log.InfoLevel:  "INFO",
	log.DebugLevel: "DEBUG",
	log.TraceLevel: "TRACE",
}

// SetVerbosity defines the verbosity level of the application. Every `-v` raises the level by one,
// starting from PANIC; four of them enable informational messages and six or more enable tracing,
// which includes dumps of decoded data.
func SetVerbosity(v []bool) {
	verbosity := log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

func VerbosityName() string {
	if name, ok := verbosityNames[log.GetLevel()]; ok {
		return name
	}
	return "TRACE"
}
