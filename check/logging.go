package check

import "github.com/sirupsen/logrus"

// logger is the package-level logger every driver function reports
// through. Callers embedding this package into a larger harness can
// redirect it with SetLogger instead of this package opening its own
// output stream.
var logger = logrus.New()

// SetLogger replaces the package-level logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		return
	}
	logger = l
}
