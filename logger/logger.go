package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *Logger

func init() {
	checkLogger()
}

func checkLogger() {
	if logger == nil {
		InitConsoleLogger()
	}
}

type FormaterLogger interface {
	Infof(template string, args ...interface{})
	Debugf(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Panicf(template string, args ...interface{})
}

type StdLogger interface {
	Info(msg string, args ...zap.Field)
	Debug(msg string, args ...zap.Field)
	Warn(msg string, args ...zap.Field)
	Error(msg string, args ...zap.Field)
	Panic(msg string, args ...zap.Field)
	Fatal(msg string, args ...zap.Field)
}

type ILogger interface {
	FormaterLogger
	StdLogger
	Wrap(name string) any
}

func GetLogger() *Logger {
	return logger
}

func Infof(template string, args ...interface{}) {
	logger.l.Info(fmt.Sprintf(template, args...))
}
func Debugf(template string, args ...interface{}) {
	logger.l.Debug(fmt.Sprintf(template, args...))
}
func Warnf(template string, args ...interface{}) {
	logger.l.Warn(fmt.Sprintf(template, args...))
}
func Errorf(template string, args ...interface{}) {
	logger.l.Error(fmt.Sprintf(template, args...))
}
func Panicf(template string, args ...interface{}) {
	logger.l.Panic(fmt.Sprintf(template, args...))
}
func Info(msg string, args ...zap.Field) {
	logger.l.Info(msg, args...)
}
func Debug(msg string, args ...zap.Field) {
	logger.l.Debug(msg, args...)
}
func Warn(msg string, args ...zap.Field) {
	logger.l.Warn(msg, args...)
}
func Error(msg string, args ...zap.Field) {
	logger.l.Error(msg, args...)
}
func Panic(msg string, args ...zap.Field) {
	logger.l.Panic(msg, args...)
}
func Fatal(msg string, args ...zap.Field) {
	logger.l.Fatal(msg, args...)
}

// Sync 同步流数据
//
//	写入文件时不是立刻就写入的，若要停止程序，需要在停止程序前调用，以保证日志可以完全写入到文件中
func Sync() {
	_ = logger.l.Sync()
}

type LogConfig struct {
	Name      string
	LogPath   string
	Level     zapcore.Level
	MaxSize   int
	MaxBackup int
	MaxAge    int
}

func InitLogger(logConfig LogConfig) {
	logger = newLogger(logConfig)
}

func InitConsoleLogger() {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02-15:04:05.000")
	config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(config), os.Stdout, zap.DebugLevel)
	logger = &Logger{
		l: zap.New(consoleCore, zap.AddCaller(), zap.AddCallerSkip(1)),
	}
}

type Logger struct {
	l *zap.Logger
}

func newLogger(logConfig LogConfig) *Logger {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02-15:04:05.000")
	config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoder := zapcore.NewConsoleEncoder(config)
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, os.Stdout, logConfig.Level),
	}
	if logConfig.LogPath != "" {
		_ = os.Mkdir(logConfig.LogPath, 0755)
		cores = append(cores, fileCore(encoder, logConfig))
	}
	core := zapcore.NewTee(cores...)
	return &Logger{
		l: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.IncreaseLevel(logConfig.Level)),
	}
}

func fileCore(encoder zapcore.Encoder, logConfig LogConfig) zapcore.Core {
	maxSize, maxBackup, maxAge := logConfig.MaxSize, logConfig.MaxBackup, logConfig.MaxAge
	if maxSize == 0 {
		maxSize = 10
	}
	if maxBackup == 0 {
		maxBackup = 7
	}
	if maxAge == 0 {
		maxAge = 7
	}
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logConfig.LogPath, logConfig.Name+".log"),
		MaxSize:    maxSize,
		MaxBackups: maxBackup,
		MaxAge:     maxAge,
		Compress:   true,
	})
	return zapcore.NewCore(encoder, writer, logConfig.Level)
}

func (l *Logger) Wrap(name string) any {
	n := *l
	n.l = l.l.With(zap.Namespace(name))
	return &n
}
func (l *Logger) Info(msg string, args ...zap.Field) {
	l.l.Info(msg, args...)
}
func (l *Logger) Debug(msg string, args ...zap.Field) {
	l.l.Debug(msg, args...)
}
func (l *Logger) Warn(msg string, args ...zap.Field) {
	l.l.Warn(msg, args...)
}
func (l *Logger) Error(msg string, args ...zap.Field) {
	l.l.Error(msg, args...)
}
func (l *Logger) Panic(msg string, args ...zap.Field) {
	l.l.Panic(msg, args...)
}
func (l *Logger) Fatal(msg string, args ...zap.Field) {
	l.l.Fatal(msg, args...)
}
func (l *Logger) Infof(template string, args ...interface{}) {
	l.l.Info(fmt.Sprintf(template, args...))
}
func (l *Logger) Debugf(template string, args ...interface{}) {
	l.l.Debug(fmt.Sprintf(template, args...))
}
func (l *Logger) Warnf(template string, args ...interface{}) {
	l.l.Warn(fmt.Sprintf(template, args...))
}
func (l *Logger) Errorf(template string, args ...interface{}) {
	l.l.Error(fmt.Sprintf(template, args...))
}
func (l *Logger) Panicf(template string, args ...interface{}) {
	l.l.Panic(fmt.Sprintf(template, args...))
}
