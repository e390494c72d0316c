package app

import (
	"fmt"
	"io"
	"time"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Warnf(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Warnf(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes timestamped lines to w. Info lines are dropped unless Verbose is set.
type FileLogger struct {
	w       io.Writer
	Verbose bool
}

func NewFileLogger(w io.Writer, verbose bool) FileLogger { return FileLogger{w: w, Verbose: verbose} }

func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	if !l.Verbose {
		return
	}
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Warnf(component string, format string, args ...interface{}) {
	writeLog(l.w, "WARN", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
