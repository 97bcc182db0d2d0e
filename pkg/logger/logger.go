package logger

import (
	ilog "github.com/dezh-tech/immortal/pkg/logger"
)

// Config is the logger configuration loaded from the yaml config file.
type Config = ilog.Config

func InitGlobalLogger(cfg *Config) {
	ilog.InitGlobalLogger(cfg)
}

func Debug(msg string, keyvals ...any) {
	ilog.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...any) {
	ilog.Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...any) {
	ilog.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...any) {
	ilog.Error(msg, keyvals...)
}
