/*
 * Copyright (c) 2026-present TypeStore authors
 */

// Package logger is a process-wide leveled logger.
// Cheap level gates (IsVerbose etc.) let callers skip argument
// construction when the level is off.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

type TLogLevel int32

const (
	LogLevelNone = TLogLevel(iota)
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelVerbose // aka Debug
	LogLevelTrace
)

var globalLogLevel = int32(LogLevelInfo)

func SetLogLevel(logLevel TLogLevel) (old TLogLevel) {
	return TLogLevel(atomic.SwapInt32(&globalLogLevel, int32(logLevel)))
}

func SetLogLevelWithRestore(logLevel TLogLevel) (restore func()) {
	old := SetLogLevel(logLevel)
	return func() {
		SetLogLevel(old)
	}
}

func Error(args ...interface{}) {
	printIfLevel(LogLevelError, args...)
}

func Warning(args ...interface{}) {
	printIfLevel(LogLevelWarning, args...)
}

func Info(args ...interface{}) {
	printIfLevel(LogLevelInfo, args...)
}

func Verbose(args ...interface{}) {
	printIfLevel(LogLevelVerbose, args...)
}

func Trace(args ...interface{}) {
	printIfLevel(LogLevelTrace, args...)
}

func IsError() bool   { return isEnabled(LogLevelError) }
func IsWarning() bool { return isEnabled(LogLevelWarning) }
func IsInfo() bool    { return isEnabled(LogLevelInfo) }
func IsVerbose() bool { return isEnabled(LogLevelVerbose) }
func IsTrace() bool   { return isEnabled(LogLevelTrace) }

// PrintLine is replaceable, e.g. by tests capturing output.
var PrintLine func(level TLogLevel, line string) = DefaultPrintLine

func DefaultPrintLine(level TLogLevel, line string) {
	var w io.Writer
	if level == LogLevelError {
		w = os.Stderr
	} else {
		w = os.Stdout
	}
	fmt.Fprintln(w, line)
}

var levelPrefixes = map[TLogLevel]string{
	LogLevelError:   "*****",
	LogLevelWarning: "!!!",
	LogLevelInfo:    "===",
	LogLevelVerbose: "---",
	LogLevelTrace:   "...",
}

func isEnabled(level TLogLevel) bool {
	return atomic.LoadInt32(&globalLogLevel) >= int32(level)
}

func printIfLevel(level TLogLevel, args ...interface{}) {
	if !isEnabled(level) {
		return
	}
	var sb strings.Builder
	sb.WriteString(time.Now().Format("01/02 15:04:05.000"))
	sb.WriteString(" ")
	sb.WriteString(levelPrefixes[level])
	for _, arg := range args {
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprint(arg))
	}
	PrintLine(level, sb.String())
}
