package framework

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is the minimal logging interface used throughout the runner. A *log.Logger satisfies it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (nullLogger) Printf(string, ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

type prefixedLogger struct {
	target Logger
	prefix string
}

func (p prefixedLogger) Printf(message string, args ...interface{}) {
	p.target.Printf(p.prefix+message, args...)
}

// LoggerWithPrefix returns a Logger that adds a fixed prefix to every message before passing
// it to the target logger.
func LoggerWithPrefix(target Logger, prefix string) Logger {
	if target == nil {
		return NullLogger()
	}
	return prefixedLogger{target: target, prefix: prefix}
}

// CapturedMessage is one line of an example's debug output. Elapsed is measured from the
// start of the example, or from the first message if the logger was not started by the runner.
type CapturedMessage struct {
	Elapsed time.Duration
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger keeps debug output in memory so that the test logger can decide at the end
// of an example whether to show it. The zero value is ready to use.
type CapturingLogger struct {
	started time.Time
	output  []CapturedMessage
	lock    sync.Mutex
}

func (l *CapturingLogger) startClock(t time.Time) {
	l.lock.Lock()
	l.started = t
	l.lock.Unlock()
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	now := time.Now()
	l.lock.Lock()
	if l.started.IsZero() {
		l.started = now
	}
	l.output = append(l.output, CapturedMessage{Elapsed: now.Sub(l.started), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

// Dump writes each message on its own line, as "<prefix>[+<elapsed>] <message>".
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[+%s] %s\n", prefix, m.Elapsed.Round(time.Microsecond), m.Message)
	}
}
