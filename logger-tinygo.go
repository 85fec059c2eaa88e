//go:build tinygo

package gpioserial

import (
	"machine"
)

func init() {
	globalLogger = &serialLogger{}
}

// serialLogger writes to machine.Serial directly. Debug messages are dropped
// unless Verbose is set, since printing between edges costs bit times.
type serialLogger struct {
	Verbose bool
}

func (l *serialLogger) log(level, msg string) {
	machine.Serial.Write([]byte("gpioserial " + level))
	machine.Serial.Write([]byte(msg))
	machine.Serial.Write([]byte("\r\n"))
}

func (l *serialLogger) Debug(msg string) {
	if l.Verbose {
		l.log("[DEBUG] ", msg)
	}
}
func (l *serialLogger) Info(msg string)  { l.log("[INFO]  ", msg) }
func (l *serialLogger) Warn(msg string)  { l.log("[WARN]  ", msg) }
func (l *serialLogger) Error(msg string) { l.log("[ERROR] ", msg) }
