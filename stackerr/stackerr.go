package stackerr

import (
	"fmt"
	"runtime"
	"strings"
)

type stackError struct {
	err  error
	file string
	line int
}

func Wrap(err error) error {
	if err == nil {
		return nil
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return err
	}
	lastSlashIdx := strings.LastIndex(file, "/")
	if lastSlashIdx >= 0 && (len(file)-1) > lastSlashIdx {
		file = file[lastSlashIdx+1:]
	}
	return &stackError{err: err, file: file, line: line}
}

func (e *stackError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.file, e.line, e.err.Error())
}

func (e *stackError) Unwrap() error {
	return e.err
}
