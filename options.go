package spreadsheet

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Sheet at construction. This is the idiomatic-Go
// substitute for file-based configuration: the engine has no persistence
// surface to read a config file from, so the ambient "how do I configure
// this component" question is answered with pluggable collaborators
// passed in at construction, not global state.
type Option func(*Sheet)

// WithLogger attaches a structured logger for diagnostic events: cycle
// rejections, invalidation-cascade sizes, auto-vivification counts. The
// default is a logrus.Logger with output discarded, so a Sheet built
// without options stays silent.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Sheet) {
		s.log = logger
	}
}

func defaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
