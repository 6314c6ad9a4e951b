package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(level)
	return l
}

// InitLogger installs the default text loggers: info and up on stdout,
// errors on stderr.
func InitLogger() {
	InfoLogger = newLogger(os.Stdout, logrus.InfoLevel)
	ErrorLogger = newLogger(os.Stderr, logrus.ErrorLevel)
}

// ConfigureLogger applies LOG_LEVEL to the info logger and switches both
// loggers to JSON output when asJSON is set. An unknown level keeps info.
func ConfigureLogger(level string, asJSON bool) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		InfoLogger.SetLevel(lvl)
	} else if level != "" {
		InfoLogger.Warnf("Unknown LOG_LEVEL %q, keeping %s", level, InfoLogger.GetLevel())
	}

	if asJSON {
		InfoLogger.SetFormatter(&logrus.JSONFormatter{})
		ErrorLogger.SetFormatter(&logrus.JSONFormatter{})
	}
}

func init() {
	// tests and tools may log before main runs
	InitLogger()
}
