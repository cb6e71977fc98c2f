package inject

import "github.com/sirupsen/logrus"

var defaultLogger logrus.FieldLogger = logrus.StandardLogger()

// SetDefaultLogger replaces logger used to report misconfigured declarations.
// nil restores logrus standard logger.
func SetDefaultLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}

	defaultLogger = l
}

func logger() logrus.FieldLogger {
	return defaultLogger
}
