package salesdata

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel orders log severities; messages below the active level are dropped.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int32(l))
}

// ParseLogLevel accepts debug, info, warn (or warning) and error, in any case.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

var (
	level atomic.Int32

	outMu sync.Mutex
	out   = log.New(os.Stderr, "", log.Ldate|log.Ltime)
)

func init() { level.Store(int32(LevelInfo)) }

// SetLogLevel switches the active level. An unknown name leaves it unchanged.
func SetLogLevel(s string) error {
	l, err := ParseLogLevel(s)
	if err != nil {
		return err
	}
	level.Store(int32(l))
	return nil
}

// GetLogLevel returns the active level.
func GetLogLevel() LogLevel { return LogLevel(level.Load()) }

// SetLogOutput redirects log lines to w and returns the previous writer.
func SetLogOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out.Writer()
	out.SetOutput(w)
	return prev
}

func logf(l LogLevel, format string, args []interface{}) {
	if l < GetLogLevel() {
		return
	}
	msg := format
	// Brand names and paths can contain '%', so a bare message is never formatted.
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	out.Printf("[%s] %s", l, msg)
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a) }

// TimeTrack logs at debug how long a phase took. Use with defer.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start).Round(time.Microsecond))
}
