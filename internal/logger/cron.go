package logger

import "github.com/robfig/cron/v3"

var _ cron.Logger = CronLogger{}

// CronLogger routes the scheduler's own log lines through a Logger.
type CronLogger struct {
	Logger Logger
}

func NewCronLogger() CronLogger {
	return CronLogger{Logger: getDefaultLogger()}
}

func (l CronLogger) Info(msg string, keysAndValues ...any) {
	l.Logger.Debugw(msg, keysAndValues...)
}

func (l CronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.Logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
