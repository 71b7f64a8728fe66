/*
 * Copyright (c) 2026-present TypeStore authors
 */

package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelGating(t *testing.T) {
	require := require.New(t)

	var lines []string
	PrintLine = func(level TLogLevel, line string) {
		lines = append(lines, line)
	}
	defer func() { PrintLine = DefaultPrintLine }()

	restore := SetLogLevelWithRestore(LogLevelInfo)
	defer restore()

	Verbose("should be dropped")
	require.Empty(lines)
	require.False(IsVerbose())

	Info("kept", 42)
	require.Len(lines, 1)
	require.True(strings.HasSuffix(lines[0], "=== kept 42"))

	SetLogLevel(LogLevelTrace)
	require.True(IsVerbose())
	require.True(IsTrace())
	Trace("now visible")
	require.Len(lines, 2)
}
