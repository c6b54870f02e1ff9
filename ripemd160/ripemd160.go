package ripemd160

import (
	"errors"
	"math"

	"github.com/ncodysoftware/ripemd160-go/lebuf"
	"github.com/ncodysoftware/ripemd160-go/stackerr"
)

const (
	Size      = 20
	BlockSize = 64

	blockWords = 16
)

var ErrInputTooLarge = errors.New("message longer than 32-bit byte length")

var iv = [5]uint32{
	0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0,
}

func Sum160(msg []byte) ([Size]byte, error) {
	var digest [Size]byte
	words, n, err := Pad(msg)
	if err != nil {
		return digest, stackerr.Wrap(err)
	}
	state := iv
	for i := uint32(0); i < n; i++ {
		state = compress(state, words[i*blockWords:(i+1)*blockWords])
	}
	for i, w := range state {
		lebuf.PutUint32(digest[4*i:], w)
	}
	return digest, nil
}

func Pad(msg []byte) ([]uint32, uint32, error) {
	if uint64(len(msg)) > math.MaxUint32 {
		return nil, 0, stackerr.Wrap(ErrInputTooLarge)
	}
	if len(msg) == 32 {
		return pad32(msg), 1, nil
	}
	return padGeneral(msg), BlockCount(uint32(len(msg))), nil
}

// BlockCount is the padded block count for a message of l bytes,
// without materializing the padding.
func BlockCount(l uint32) uint32 {
	q, r := l/BlockSize, l%BlockSize
	if r <= BlockSize-9 {
		return q + 1
	}
	return q + 2
}

func padGeneral(msg []byte) []uint32 {
	l := uint32(len(msg))
	buf := make([]byte, 0, BlockCount(l)*BlockSize)
	buf = append(buf, msg...)
	buf = append(buf, 0x80)
	for len(buf)%BlockSize != BlockSize-8 {
		buf = append(buf, 0x00)
	}
	buf = lebuf.AppendUint32(buf, l<<3)
	buf = lebuf.AppendUint32(buf, l>>29)
	return lebuf.Words(buf)
}

// pad32 is padGeneral evaluated in closed form at len(msg) == 32, the
// dominant case when rehashing a 32-byte digest.
func pad32(msg []byte) []uint32 {
	words := make([]uint32, 0, blockWords)
	words = append(words, lebuf.Words(msg)...)
	words = append(words, 0x80, 0, 0, 0, 0, 0, 32<<3, 0)
	return words
}
