package planar

import "github.com/sirupsen/logrus"

// logger receives diagnostics about refused coordinate conversions and
// region operations. Geometry queries never log.
var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger. A nil logger restores the logrus
// standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}
