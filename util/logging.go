package util

import (
	"io"
	"log"
	"os"
)

// SetupLogging opens logFile in append mode and fans process-wide log
// output out to both stdout and that file, with every line prefixed by
// prefix. It mirrors the client/database command entrypoints' own
// logging setup. The caller is responsible for closing the returned
// file once the process is done logging.
func SetupLogging(logFile string, prefix string) (*os.File, error) {
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	log.SetPrefix(prefix)
	return f, nil
}
