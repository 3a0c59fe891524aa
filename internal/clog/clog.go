// Package clog provides the named-logger convention shared by the
// consensus, collab and cmd packages.
package clog

import "github.com/sirupsen/logrus"

// For component-scoped log lines, e.g. clog.For("difficulty").Warn(...).
func For(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}
