package main

import (
	"io"

	"github.com/alnah/go-md2printer/internal/logging"
)

// loggingOptions is the resolved logging setup for one invocation.
type loggingOptions = logging.Options

func initLogging(opts loggingOptions) (io.Closer, error) {
	return logging.Init(opts)
}
