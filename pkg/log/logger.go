package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006-01-02 15:04:05.000"

var (
	globalLogger      Logger
	globalLoggerLevel zap.AtomicLevel
)

var (
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel

	// SuppressLevel sits above every zap level so that no leveled
	// message passes the threshold. Print still writes.
	SuppressLevel = zapcore.FatalLevel + 1
)

type (
	// Field is an alias of zap.Field. Aliasing this type dramatically
	// improves the navigability of this package's API documentation.
	Field = zap.Field

	Level = zapcore.Level
)

// ParseLevel maps a verbose-level selector to a threshold by
// case-insensitive prefix match: "i*" -> info, "w*" -> warning,
// "s*" -> suppress. Any other selector, including "e*" and the empty
// string, enables error and above only. The error-only fallback for
// unrecognized selectors is kept as shipped.
func ParseLevel(selector string) Level {
	s := strings.ToLower(selector)
	switch {
	case strings.HasPrefix(s, "i"):
		return InfoLevel
	case strings.HasPrefix(s, "w"):
		return WarnLevel
	case strings.HasPrefix(s, "s"):
		return SuppressLevel
	default:
		return ErrorLevel
	}
}

// Logger defines methods of writing log
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// Print writes msg to the output stream regardless of the
	// configured threshold.
	Print(msg string)

	Level() Level
	Sync()
}

type logger struct {
	level  zap.AtomicLevel
	logger *zap.Logger
	out    io.Writer
}

type Config struct {
	// Level is a verbose-level selector, see ParseLevel.
	Level string

	// Out receives info and below; ErrOut receives warning and above.
	// Default to stdout and stderr.
	Out    io.Writer
	ErrOut io.Writer
}

func New(cfgs ...*Config) (Logger, zap.AtomicLevel) {
	var cfg *Config
	if len(cfgs) > 0 && cfgs[0] != nil {
		cfg = cfgs[0]
	} else {
		cfg = &Config{}
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := cfg.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	selector := cfg.Level
	if lvl := os.Getenv("LOG_LEVEL"); selector == "" && lvl != "" {
		selector = lvl
	}
	atomicLevel := zap.NewAtomicLevelAt(ParseLevel(selector))

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:       "time",
		LevelKey:      "level",
		NameKey:       "name",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format(timeLayout))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
	})

	// Two cores share one threshold: info goes to out, warning and
	// above to errOut.
	outCore := zapcore.NewCore(encoder, zapcore.AddSync(out), zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomicLevel.Enabled(l) && l < zapcore.WarnLevel
	}))
	errCore := zapcore.NewCore(encoder, zapcore.AddSync(errOut), zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomicLevel.Enabled(l) && l >= zapcore.WarnLevel
	}))

	l := &logger{
		level:  atomicLevel,
		logger: zap.New(zapcore.NewTee(outCore, errCore)),
		out:    out,
	}

	return l, atomicLevel
}

func (l *logger) Print(msg string) {
	_, _ = fmt.Fprintf(l.out, "%s\t[LOG]\t%s\n", time.Now().Format(timeLayout), msg)
	if f, ok := l.out.(interface{ Sync() error }); ok {
		_ = f.Sync()
	}
}

func init() {
	globalLogger, globalLoggerLevel = New()
}
