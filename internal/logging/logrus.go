package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a logrus entry to Logger. Output is JSON with the
// level stored under "loglevel".
type LogrusLogger struct {
	e *logrus.Entry
}

func NewLogrusLogger(w io.Writer, level string) *LogrusLogger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l := &logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   w,
		Hooks: make(logrus.LevelHooks),
		Level: lvl,
	}
	return &LogrusLogger{e: logrus.NewEntry(l)}
}

func (l *LogrusLogger) entry(ctx context.Context, args []any) *logrus.Entry {
	return l.e.WithContext(ctx).WithFields(toFields(args))
}

func (l *LogrusLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.entry(ctx, args).Debug(msg)
}

func (l *LogrusLogger) Info(ctx context.Context, msg string, args ...any) {
	l.entry(ctx, args).Info(msg)
}

func (l *LogrusLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.entry(ctx, args).Warn(msg)
}

func (l *LogrusLogger) Error(ctx context.Context, msg string, args ...any) {
	l.entry(ctx, args).Error(msg)
}

func (l *LogrusLogger) With(args ...any) Logger {
	return &LogrusLogger{e: l.e.WithFields(toFields(args))}
}

// toFields pairs up slog-style key/value args. A dangling key is stored
// under "!BADKEY" the same way slog reports it.
func toFields(args []any) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			f["!BADKEY"] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		if err, isErr := args[i+1].(error); isErr {
			f[key] = err.Error()
			continue
		}
		f[key] = args[i+1]
	}
	return f
}
