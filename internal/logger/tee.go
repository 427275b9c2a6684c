package logger

import "github.com/harrison/dupfinder/internal/finder"

// Tee forwards every message to each of its loggers in order.
type Tee []Logger

func (t Tee) LogTrace(message string) {
	for _, l := range t {
		l.LogTrace(message)
	}
}

func (t Tee) LogDebug(message string) {
	for _, l := range t {
		l.LogDebug(message)
	}
}

func (t Tee) LogInfo(message string) {
	for _, l := range t {
		l.LogInfo(message)
	}
}

func (t Tee) LogWarn(message string) {
	for _, l := range t {
		l.LogWarn(message)
	}
}

func (t Tee) LogError(message string) {
	for _, l := range t {
		l.LogError(message)
	}
}

func (t Tee) LogSummary(result *finder.Result) {
	for _, l := range t {
		l.LogSummary(result)
	}
}
