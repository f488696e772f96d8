package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger = newLogger(os.Stderr, LevelInfo, "time")

type Level int32

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

func (level Level) String() string {
	switch level {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// zapLevel maps error..trace onto zap's error..debug, with trace one below debug.
func (level Level) zapLevel() zapcore.Level { return zapcore.Level(2 - int8(level)) }

func fromZap(l zapcore.Level) Level { return Level(2 - int32(l)) }

// ParseLevel parses a log level string into a Level.
// Valid log levels are: error, warn, info, debug, trace.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelError, fmt.Errorf("unknown log level: %s", level)
	}
}

// Default returns the package-level logger.
func Default() *Logger { return defaultLogger }

func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
	defaultLogger.Debug("log level set to %s", level)
}

// Logger writes one JSON object per line through zap. Loggers derived with
// With share the level of their parent.
type Logger struct {
	zap   *zap.Logger
	level zap.AtomicLevel
}

// New returns a logger writing entries without timestamps to out.
func New(out io.Writer, level Level) *Logger {
	return newLogger(out, level, "")
}

func newLogger(out io.Writer, level Level, timeKey string) *Logger {
	atomic := zap.NewAtomicLevelAt(level.zapLevel())
	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:     timeKey,
		LevelKey:    "level",
		MessageKey:  "msg",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: encodeLevel,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(out), atomic)
	return &Logger{zap: zap.New(core), level: atomic}
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(fromZap(l).String())
}

func (l *Logger) SetLevel(level Level) { l.level.SetLevel(level.zapLevel()) }

func (l *Logger) Level() Level { return fromZap(l.level.Level()) }

// With returns a logger that adds key to every entry.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{zap: l.zap.With(zap.Any(key, value)), level: l.level}
}

func (l *Logger) logf(level Level, format string, args ...any) {
	zl := level.zapLevel()
	if !l.level.Enabled(zl) {
		return
	}
	if ce := l.zap.Check(zl, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Trace(format string, args ...any) { l.logf(LevelTrace, format, args...) }

// Sync flushes buffered entries.
func (l *Logger) Sync() error { return l.zap.Sync() }

func Info(format string, args ...any)  { defaultLogger.Info(format, args...) }
func Error(format string, args ...any) { defaultLogger.Error(format, args...) }
func Warn(format string, args ...any)  { defaultLogger.Warn(format, args...) }
func Debug(format string, args ...any) { defaultLogger.Debug(format, args...) }
func Trace(format string, args ...any) { defaultLogger.Trace(format, args...) }
