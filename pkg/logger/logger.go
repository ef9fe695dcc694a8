package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	ServiceName string `yaml:"service_name" toml:"service_name" env:"LOGGER_SERVICE_NAME" env-default:"atvremote" env-description:"Service name, also the log file name"`
	Level       string `yaml:"level" toml:"level" env:"LOGGER_LEVEL" env-default:"info" env-description:"Minimum level: debug, info, warn, error"`
	Pretty      bool   `yaml:"pretty" toml:"pretty" env:"LOGGER_PRETTY" env-default:"true" env-description:"Enables human readable logging. Otherwise, uses json output"`
	Dir         string `yaml:"dir" toml:"dir" env:"LOGGER_DIR" env-description:"Log directory, defaults to logs/ inside the data directory"`
}

// New builds the process logger. Records go to stdout and to a rotating
// file in cfg.Dir. The standard logrus logger used by the internal
// packages is pointed at the same destinations and level.
func New(cfg Config) *zap.SugaredLogger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	atomicLevel := zap.NewAtomicLevelAt(level)

	encoder := getEncoder(cfg.Pretty)

	fileWriter := getLogWriter(cfg)

	fileCore := zapcore.NewCore(encoder, fileWriter, atomicLevel)

	consoleWriter := zapcore.Lock(os.Stdout)
	consoleCore := zapcore.NewCore(encoder, consoleWriter, atomicLevel)

	core := zapcore.NewTee(fileCore, consoleCore)

	routeLogrus(level, cfg.Pretty, io.MultiWriter(os.Stdout, fileWriter))

	return zap.New(core, zap.AddCaller()).Sugar()
}

func getEncoder(pretty bool) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
	}
	if !pretty {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = CustomLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getLogWriter(cfg Config) zapcore.WriteSyncer {
	dir := cfg.Dir
	if dir == "" {
		dir = "logs"
	}
	lumberJackLogger := &lumberjack.Logger{
		Filename:   filepath.Join(dir, cfg.ServiceName+".log"),
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	return zapcore.AddSync(lumberJackLogger)
}

func routeLogrus(level zapcore.Level, pretty bool, out io.Writer) {
	logrus.SetOutput(out)
	if pretty {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(LogrusLevel(level))
}

// LogrusLevel maps a zap level onto the closest logrus level.
func LogrusLevel(level zapcore.Level) logrus.Level {
	switch {
	case level <= zapcore.DebugLevel:
		return logrus.DebugLevel
	case level == zapcore.InfoLevel:
		return logrus.InfoLevel
	case level == zapcore.WarnLevel:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func CustomLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + getIcon(level) + level.CapitalString() + "]")
}

func getIcon(lvl zapcore.Level) string {
	switch lvl {
	case zapcore.InfoLevel:
		return "🔵 "
	case zapcore.DebugLevel:
		return "🟢 "
	case zapcore.WarnLevel:
		return "🟡️ "
	case zapcore.ErrorLevel:
		return "🔴 "
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return "⚫ "
	default:
		return ""
	}
}
