package config

import (
	"fmt"
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger from c. Output goes to a rotating
// lumberjack file when Logfile is set, otherwise to stderr.
func NewLogger(c LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}

	log := logrus.New()
	log.SetLevel(level)
	switch c.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Format)
	}

	var out io.Writer = os.Stderr
	if c.Logfile != "" {
		out = &lumberjack.Logger{
			Filename:   c.Logfile,
			MaxSize:    c.MaxSize, // megabytes
			MaxAge:     c.MaxAge,  // days
			MaxBackups: c.MaxBackups,
		}
	}
	log.SetOutput(out)

	return log, nil
}
