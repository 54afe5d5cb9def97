package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	log  *slog.Logger
	once sync.Once
)

// Init configures the process-wide logger. Level comes from LOG_LEVEL
// (debug|info|warn|error), JSON output from LOG_FORMAT=json.
func Init() {
	once.Do(func() {
		level := slog.LevelInfo
		switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}

		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler
		if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
			handler = slog.NewJSONHandler(os.Stdout, opts)
		} else {
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		log = slog.New(handler)
	})
}

func get() *slog.Logger {
	if log == nil {
		Init()
	}
	return log
}

func Debug(msg string, args ...any) {
	get().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}

// normalize tolerates call sites that pass a bare error (or any odd trailing
// value) instead of key/value pairs.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}
	if err, ok := args[len(args)-1].(error); ok {
		return append(args[:len(args)-1], "error", err)
	}
	return append(args[:len(args)-1], "detail", args[len(args)-1])
}
