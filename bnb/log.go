// Package bnb - package logger.
//
// The root logger uses github.com/rs/zerolog with a console writer and is
// silenced automatically under `go test` so property tests stay quiet.

package bnb

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the package logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Disable silences the package logger.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the current package logger.
func Logger() zerolog.Logger {
	return logger
}
