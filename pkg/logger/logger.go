// Package logger defines the logging surface used by the gateway and
// the stores, with a zerolog-backed implementation. An slog adapter
// lives in the slog subpackage.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0664

// Logger is what the SDK logs through. The zero value of any store or
// gateway uses Discard, so logging is strictly opt-in.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// LogBuild configures a zerolog-backed Logger. Output goes to a file
// path, an arbitrary writer, or stdout when neither is set.
type LogBuild struct {
	writer io.Writer
	path   string
}

type LogData struct {
	writer  io.Writer
	LogFile *os.File
	Logger  zerolog.Logger
}

func New() *LogBuild {
	return &LogBuild{}
}

func (build *LogBuild) FromPath(path string) *LogBuild {
	build.path = path
	return build
}

func (build *LogBuild) FromBuffer(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

func (build *LogBuild) Make() (logData *LogData, err error) {
	logData = new(LogData)
	logData.writer = build.writer
	if logData.writer == nil {
		logData.writer = os.Stdout
	}
	if build.path != "" {
		logData.LogFile, err = os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		logData.writer = zerolog.SyncWriter(logData.LogFile)
	}
	logData.Logger = zerolog.New(logData.writer).With().Timestamp().Logger()
	return
}

func (l *LogData) Error(msg string, args ...any) {
	l.event(l.Logger.Error(), msg, args)
}

func (l *LogData) Warn(msg string, args ...any) {
	l.event(l.Logger.Warn(), msg, args)
}

func (l *LogData) Info(msg string, args ...any) {
	l.event(l.Logger.Info(), msg, args)
}

func (l *LogData) Debug(msg string, args ...any) {
	l.event(l.Logger.Debug(), msg, args)
}

// event attaches slog-style alternating key/value args as zerolog
// fields. A trailing key without a value is ignored.
func (l *LogData) event(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, args[i+1])
	}
	ev.Msg(msg)
}

// Discard drops everything. It is the default logger of every component
// in this SDK.
type Discard struct{}

func (Discard) Error(msg string, args ...any) {}
func (Discard) Warn(msg string, args ...any)  {}
func (Discard) Info(msg string, args ...any)  {}
func (Discard) Debug(msg string, args ...any) {}
