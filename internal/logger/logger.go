// Package logger provides the shared structured logger for the client.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance. The default writes to stderr at warn
// level so TUI output stays clean unless something actually went wrong.
var Logger = newDefault()

func newDefault() *log.Logger {
	l := log.New(os.Stderr)
	l.SetTimeFormat("")
	l.SetLevel(log.WarnLevel)
	return l
}

// Configure sets level and destination. An empty file keeps stderr; writing
// a TUI's logs to a file is usually what you want while the alt screen is up.
func Configure(level, file string) error {
	var out io.Writer = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		out = f
	}

	l := log.New(out)
	l.SetTimeFormat("")
	l.SetLevel(parseLevel(level))
	Logger = l
	return nil
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

func Debug(msg any, kv ...any) { Logger.Debug(msg, kv...) }
func Info(msg any, kv ...any)  { Logger.Info(msg, kv...) }
func Warn(msg any, kv ...any)  { Logger.Warn(msg, kv...) }
func Error(msg any, kv ...any) { Logger.Error(msg, kv...) }
