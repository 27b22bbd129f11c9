package config

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

// OpenLogger returns the session logger. With no log file configured it
// writes to fallback.
func (c Config) OpenLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	if c.LogFile == "" {
		return log.New(fallback, "", log.LstdFlags), func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening log file %s", c.LogFile)
	}
	return log.New(f, "", log.LstdFlags), f.Close, nil
}
