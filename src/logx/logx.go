package logx

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
}

type Logx struct {
	level   zapcore.Level
	dev     bool
	console bool
	sugar   *zap.SugaredLogger
}

func NewLogx(lvl zapcore.Level, dev bool, console bool) *Logx {
	return &Logx{level: lvl, dev: dev, console: console}
}

var levelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"fatal": zapcore.FatalLevel,
}

func LevelFromString(lvl string) zapcore.Level {
	level, exist := levelMap[lvl]
	if !exist {
		return zapcore.InfoLevel
	}
	return level
}

// InitLogger wires the zap core. With console enabled output goes to stdout
// with the console encoder; otherwise JSON lines go to w.
func (l *Logx) InitLogger(w io.Writer) {
	var sink zapcore.WriteSyncer
	if l.console {
		sink = zapcore.AddSync(os.Stdout)
	} else {
		sink = zapcore.AddSync(w)
	}

	var encoderCfg zapcore.EncoderConfig
	if l.dev {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if l.console {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(l.level))
	l.sugar = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func (l *Logx) Debug(args ...interface{}) { l.sugar.Debug(args...) }
func (l *Logx) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}
func (l *Logx) Info(args ...interface{}) { l.sugar.Info(args...) }
func (l *Logx) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}
func (l *Logx) Warn(args ...interface{}) { l.sugar.Warn(args...) }
func (l *Logx) Warnf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}
func (l *Logx) Error(args ...interface{}) { l.sugar.Error(args...) }
func (l *Logx) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}
func (l *Logx) Fatal(args ...interface{}) { l.sugar.Fatal(args...) }
func (l *Logx) Fatalf(template string, args ...interface{}) {
	l.sugar.Fatalf(template, args...)
}

// Nop returns a logger that discards everything. Handy default for tests
// and for library code that was handed no logger.
func Nop() Logger {
	n := &Logx{sugar: zap.NewNop().Sugar()}
	return n
}
