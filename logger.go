package gpioserial

import "fmt"

// Logger receives the driver's messages as plain strings, so backends without
// fmt (the TinyGo serial console) can print them unchanged.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

var globalLogger Logger = nopLogger{}

// SetLogger sets the global logger instance. A nil logger silences the driver.
func SetLogger(l Logger) {
	if l == nil {
		globalLogger = nopLogger{}
		return
	}
	globalLogger = l
}

// debugf skips formatting while logging is silenced.
func debugf(format string, args ...interface{}) {
	if _, nop := globalLogger.(nopLogger); nop {
		return
	}
	globalLogger.Debug(fmt.Sprintf(format, args...))
}

func warnf(format string, args ...interface{}) {
	if _, nop := globalLogger.(nopLogger); nop {
		return
	}
	globalLogger.Warn(fmt.Sprintf(format, args...))
}

// nopLogger is a logger that does nothing.
type nopLogger struct{}

func (nopLogger) Debug(msg string) {}
func (nopLogger) Info(msg string)  {}
func (nopLogger) Warn(msg string)  {}
func (nopLogger) Error(msg string) {}
