package enginelog

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

const maxLogSize = 500 * 1024 * 1024

// Logger is the surface every engine component logs through, mirroring
// azcopy's ILogger/ILoggerCloser split.
type Logger interface {
	ShouldLog(level Level) bool
	Log(level Level, msg string)
	Logf(level Level, format string, args ...any)
	Panic(err error)
	Close() error
}

type engineLogger struct {
	minLevel  Level
	logger    *log.Logger
	writer    *rotatingWriter
	sanitizer Sanitizer
}

// New opens a rotating log file under logDir named name+".log" and returns
// a ready-to-use Logger. Passing ELevel.None() suppresses all output and
// skips opening a file, matching azcopy's jobLogger.OpenLog early return.
func New(name string, minLevel Level, logDir string) (Logger, error) {
	if minLevel == ELevel.None() {
		return &engineLogger{minLevel: minLevel, sanitizer: NewTokenSanitizer()}, nil
	}

	w, err := newRotatingWriter(filepath.Join(logDir, name+".log"), maxLogSize)
	if err != nil {
		return nil, errors.Wrap(err, "opening engine log")
	}

	l := log.New(w, "", log.LstdFlags|log.LUTC)
	l.Println("engine", name, "starting")
	l.Println("os", runtime.GOOS, "arch", runtime.GOARCH)
	l.Println("log times are in UTC; local time is", time.Now().Format("2 Jan 2006 15:04:05"))

	return &engineLogger{
		minLevel:  minLevel,
		logger:    l,
		writer:    w,
		sanitizer: NewTokenSanitizer(),
	}, nil
}

func (l *engineLogger) ShouldLog(level Level) bool {
	if level == ELevel.None() {
		return false
	}
	return level <= l.minLevel
}

func (l *engineLogger) Log(level Level, msg string) {
	if !l.ShouldLog(level) || l.logger == nil {
		return
	}
	l.logger.Println(fmt.Sprintf("[%s] %s", level, l.sanitizer.Sanitize(msg)))
}

func (l *engineLogger) Logf(level Level, format string, args ...any) {
	l.Log(level, fmt.Sprintf(format, args...))
}

func (l *engineLogger) Panic(err error) {
	if l.logger != nil {
		l.logger.Println("[PANIC]", err)
	}
	panic(err)
}

func (l *engineLogger) Close() error {
	if l.writer == nil {
		return nil
	}
	if l.logger != nil {
		l.logger.Println("closing log")
	}
	return l.writer.Close()
}
