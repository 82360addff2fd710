package logger

import (
	"go.uber.org/zap"
)

var instance *zap.SugaredLogger

// Initialize - настраивает глобальный логер zap с указанным уровнем.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	// время в читаемом виде, остальное как в production-конфиге
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zap.NewDevelopmentEncoderConfig().EncodeTime

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	instance = l.Sugar()
	return nil
}

// Get - возвращает логер, без инициализации отдаёт no-op
func Get() *zap.SugaredLogger {
	if instance == nil {
		return zap.NewNop().Sugar()
	}
	return instance
}

// Sync - сброс буферов
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

func Debug(args ...interface{}) {
	Get().Debugln(args...)
}

func Info(args ...interface{}) {
	Get().Infoln(args...)
}

func Warn(args ...interface{}) {
	Get().Warnln(args...)
}

func Error(args ...interface{}) {
	Get().Errorln(args...)
}

func Panic(args ...interface{}) {
	Get().Panicln(args...)
}

// Infow - структурированная запись с парами ключ/значение
func Infow(msg string, keysAndValues ...interface{}) {
	Get().Infow(msg, keysAndValues...)
}

// Warnw - структурированное предупреждение
func Warnw(msg string, keysAndValues ...interface{}) {
	Get().Warnw(msg, keysAndValues...)
}

// Errorw - структурированная ошибка
func Errorw(msg string, keysAndValues ...interface{}) {
	Get().Errorw(msg, keysAndValues...)
}
