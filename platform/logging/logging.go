package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the standard logrus logger. format is "json" or "text".
func Init(level, format string) error {
	return Configure(logrus.StandardLogger(), level, format)
}

func Configure(log *logrus.Logger, level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stdout)
	return nil
}
