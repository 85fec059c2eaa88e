//go:build !tinygo

package gpioserial

import (
	"github.com/golang/glog"
)

func init() {
	globalLogger = &glogLogger{}
}

// glogLogger is the default logger on Linux. Debug messages need -v=2.
type glogLogger struct{}

func (l *glogLogger) Debug(msg string) {
	glog.V(2).Info(msg)
}

func (l *glogLogger) Info(msg string) {
	glog.Info(msg)
}

func (l *glogLogger) Warn(msg string) {
	glog.Warning(msg)
}

func (l *glogLogger) Error(msg string) {
	glog.Error(msg)
}
