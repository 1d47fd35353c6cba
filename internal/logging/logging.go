// Package logging configures the process-wide structured logger.
package logging

import "github.com/sirupsen/logrus"

// New builds a JSON logger at the given level. Unknown levels fall back to
// info rather than failing a cold start over a typo.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
