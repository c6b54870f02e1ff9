package hash160

import (
	"crypto/sha256"

	"github.com/ncodysoftware/ripemd160-go/ripemd160"
)

func Sum(data []byte) [20]byte {
	h256 := sha256.Sum256(data)
	// a 32-byte digest can never trip the ripemd160 length bound
	h160, _ := ripemd160.Sum160(h256[:])
	return h160
}
