package ripemd160

import (
	"testing"

	"github.com/ncodysoftware/ripemd160-go/assert"
)

func Test_CompressEmptyMessageBlock(t *testing.T) {
	words, n, err := Pad(nil)
	assert.Must(t, err)
	assert.MustEqual(t, uint32(1), n)
	state := compress(iv, words)
	assert.MustEqual(
		t,
		[5]uint32{
			0xa585119c, 0x54fce9c5, 0x97082861, 0x48f5e87e, 0x318d25b2,
		},
		state,
	)
}

func Test_CompressLeavesBlockUntouched(t *testing.T) {
	block := make([]uint32, blockWords)
	for i := range block {
		block[i] = uint32(i) * 0x9e3779b9
	}
	orig := append([]uint32(nil), block...)
	compress(iv, block)
	assert.MustEqual(t, orig, block)
}
