package main

import (
	"testing"

	"github.com/ncodysoftware/ripemd160-go/assert"
)

func Test_DigestLine(t *testing.T) {
	line, err := digestLine(false, []byte("abc"), "abc.txt")
	assert.Must(t, err)
	assert.MustEqual(
		t, "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc  abc.txt", line,
	)
}

func Test_DigestLineHash160(t *testing.T) {
	line, err := digestLine(true, nil, "-")
	assert.Must(t, err)
	assert.MustEqual(
		t, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb  -", line,
	)
}
