package assert

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

func Must(t *testing.T, err error) {
	if err == nil {
		return
	}
	t.Fatalf("\r%s: %s\n", callerRef(), err.Error())
}

func MustIdx(t *testing.T, idx int, err error) {
	if err == nil {
		return
	}
	t.Fatalf("\r%s: idx %d: %s\n", callerRef(), idx, err.Error())
}

func MustEqual[T any](t *testing.T, expected, actual T) {
	if reflect.DeepEqual(expected, actual) {
		return
	}
	t.Fatalf(
		"\r%s: \nexpected:\t%v\nactual:\t\t%v\n",
		callerRef(), expected, actual,
	)
}

func MustEqualIdx[T any](t *testing.T, idx int, expected, actual T) {
	if reflect.DeepEqual(expected, actual) {
		return
	}
	t.Fatalf(
		"\r%s: idx %d\nexpected:\t%v\nactual:\t\t%v\n",
		callerRef(), idx, expected, actual,
	)
}

func callerRef() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "???"
	}
	lastSlashIdx := strings.LastIndex(file, "/")
	if lastSlashIdx >= 0 && (len(file)-1) > lastSlashIdx {
		file = file[lastSlashIdx+1:]
	}
	return file + ":" + strconv.Itoa(line)
}
