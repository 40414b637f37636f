// Package internal carries helpers shared by the catlog package.
package internal

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// AppendCaller appends "file.go:123" for the frame depth frames above the
// runtime.Caller invocation, following runtime.Caller's skip convention.
// Unknown frames append "???" so the line shape stays stable.
func AppendCaller(buf []byte, depth int) []byte {
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		return append(buf, "???"...)
	}
	buf = append(buf, filepath.Base(file)...)
	buf = append(buf, ':')
	return strconv.AppendInt(buf, int64(line), 10)
}
